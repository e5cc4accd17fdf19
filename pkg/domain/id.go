package domain

import (
	"strings"

	"github.com/google/uuid"
)

// IDSource produces a unique entity id for a given prefix ("Q", "POL",
// "CLM"). Production uses NewID; tests may inject a deterministic source.
type IDSource func(prefix string) string

// NewID returns an id like "POL-3F2A9C1B0", an uppercase token derived
// from a random UUID. 9 hex characters keep collision probability
// negligible for a process-local store.
func NewID(prefix string) string {
	tok := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return prefix + "-" + tok[:9]
}
