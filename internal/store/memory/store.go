// Package memory implements the Domain Store in process memory.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/voyantic/sojourn/pkg/domain"
)

// Store implements ports.Store in memory. Safe for concurrent use. Reads
// and writes exchange copies, never the stored slices or maps themselves.
type Store struct {
	mu         sync.RWMutex
	current    *domain.Quote
	policies   []domain.Policy
	claims     map[string]domain.Claim
	claimOrder []string
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		claims: make(map[string]domain.Claim),
	}
}

// CurrentQuote returns a copy of the installed quote.
func (s *Store) CurrentQuote(ctx context.Context) (*domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, domain.ErrNoCurrentQuote
	}
	q := s.current.Clone()
	return &q, nil
}

// SetCurrentQuote replaces the current quote, discarding the prior one.
func (s *Store) SetCurrentQuote(ctx context.Context, q domain.Quote) error {
	owned := q.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &owned
	return nil
}

// AppendPolicy appends p to the policy list.
func (s *Store) AppendPolicy(ctx context.Context, p domain.Policy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policies = append(s.policies, p)
	return nil
}

// Policies returns the policies in purchase order.
func (s *Store) Policies(ctx context.Context) ([]domain.Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Policy(nil), s.policies...), nil
}

// PutClaim inserts a claim, rejecting overwrite of an existing id.
func (s *Store) PutClaim(ctx context.Context, c domain.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.claims[c.ID]; exists {
		return &domain.InvariantError{
			Op:  "store.PutClaim",
			Msg: fmt.Sprintf("claim id %s already exists", c.ID),
		}
	}
	s.claims[c.ID] = c
	s.claimOrder = append(s.claimOrder, c.ID)
	return nil
}

// Claim looks up a claim by id.
func (s *Store) Claim(ctx context.Context, id string) (domain.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.claims[id]
	if !ok {
		return domain.Claim{}, domain.ErrClaimNotFound
	}
	return c, nil
}

// Claims returns all claims in insertion order.
func (s *Store) Claims(ctx context.Context) ([]domain.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Claim, 0, len(s.claimOrder))
	for _, id := range s.claimOrder {
		out = append(out, s.claims[id])
	}
	return out, nil
}
