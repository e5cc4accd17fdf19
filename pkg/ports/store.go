package ports

import (
	"context"

	"github.com/voyantic/sojourn/pkg/domain"
)

// Store is the Domain Store: the single shared mutable state of the system.
// It holds at most one current quote, an append-only ordered policy list,
// and claims keyed by id with insertion order preserved for display.
//
// Implementations must be safe for concurrent use, but they do not provide
// cross-call transactions; the action bridge serializes each action's
// read-validate-write sequence.
type Store interface {
	// CurrentQuote returns the installed quote, or domain.ErrNoCurrentQuote
	// when none has been installed yet.
	CurrentQuote(ctx context.Context) (*domain.Quote, error)

	// SetCurrentQuote installs q as the current quote, discarding any prior
	// one. No history is retained.
	SetCurrentQuote(ctx context.Context, q domain.Quote) error

	// AppendPolicy appends a fully-formed policy. Policies are never
	// mutated or removed afterwards.
	AppendPolicy(ctx context.Context, p domain.Policy) error

	// Policies returns a snapshot of all policies in purchase order.
	Policies(ctx context.Context) ([]domain.Policy, error)

	// PutClaim inserts a claim keyed by its id. Inserting an id that is
	// already present is an invariant violation and returns
	// *domain.InvariantError without modifying the store.
	PutClaim(ctx context.Context, c domain.Claim) error

	// Claim looks up a claim by id, returning domain.ErrClaimNotFound when
	// absent.
	Claim(ctx context.Context, id string) (domain.Claim, error)

	// Claims returns a snapshot of all claims in insertion order.
	Claims(ctx context.Context) ([]domain.Claim, error)
}
