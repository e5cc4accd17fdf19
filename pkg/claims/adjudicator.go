// Package claims produces claim records with a simulated adjudication
// outcome.
//
// The outcome is an intentional coin flip: it is not reproducible from the
// claim's inputs. Tests inject a seeded rand.Rand to force either branch.
package claims

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/voyantic/sojourn/pkg/domain"
)

// Adjudicator creates claims for existing policies. It does not verify that
// the policy exists; that lookup belongs to the action bridge.
type Adjudicator struct {
	rng   *rand.Rand
	ids   domain.IDSource
	clock func() time.Time
}

// Option configures an Adjudicator.
type Option func(*Adjudicator)

// WithRand injects the randomness source used for the approval flip.
func WithRand(rng *rand.Rand) Option {
	return func(a *Adjudicator) {
		a.rng = rng
	}
}

// WithIDSource injects the claim id generator.
func WithIDSource(ids domain.IDSource) Option {
	return func(a *Adjudicator) {
		a.ids = ids
	}
}

// WithClock injects the timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(a *Adjudicator) {
		a.clock = clock
	}
}

// New creates an Adjudicator. Defaults: a crypto-seeded rand.Rand,
// domain.NewID, and time.Now.
func New(opts ...Option) *Adjudicator {
	a := &Adjudicator{
		ids:   domain.NewID,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(cryptoSeed()))
	}
	return a
}

// Adjudicate creates a claim with a fresh id, an unbiased Auto-Approved /
// Under Review flip, and a creation timestamp. The status never transitions
// afterwards.
func (a *Adjudicator) Adjudicate(policyID, reason string) domain.Claim {
	status := domain.StatusUnderReview
	if a.rng.Intn(2) == 0 {
		status = domain.StatusAutoApproved
	}

	return domain.Claim{
		ID:       a.ids("CLM"),
		PolicyID: policyID,
		Reason:   reason,
		Status:   status,
		Date:     a.clock(),
	}
}

// cryptoSeed draws a seed from crypto/rand so two processes started at the
// same instant do not share an outcome stream.
func cryptoSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
