// Package redis implements the Domain Store on Redis, for deployments
// where the action bridge runs behind more than one process.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"github.com/voyantic/sojourn/pkg/domain"
)

// Store implements ports.Store using Redis. Quotes are stored as a JSON
// value, policies as a list (preserving purchase order), and claims as a
// hash plus an order list. Claim insertion relies on HSETNX so an id
// collision surfaces as an invariant violation instead of an overwrite.
type Store struct {
	client *backend.Client
	prefix string
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix overrides the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store from a connection URL
// (e.g. "redis://localhost:6379/0").
func New(url string, opts ...Option) (*Store, error) {
	cfg, err := backend.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis store: parse url: %w", err)
	}
	return NewFromClient(backend.NewClient(cfg), opts...), nil
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "sojourn:",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) quoteKey() string      { return s.prefix + "quote:current" }
func (s *Store) policiesKey() string   { return s.prefix + "policies" }
func (s *Store) claimsKey() string     { return s.prefix + "claims" }
func (s *Store) claimOrderKey() string { return s.prefix + "claims:order" }

// CurrentQuote returns the installed quote.
func (s *Store) CurrentQuote(ctx context.Context) (*domain.Quote, error) {
	raw, err := s.client.Get(ctx, s.quoteKey()).Result()
	if errors.Is(err, backend.Nil) {
		return nil, domain.ErrNoCurrentQuote
	}
	if err != nil {
		return nil, fmt.Errorf("redis store: get quote: %w", err)
	}

	var q domain.Quote
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		return nil, fmt.Errorf("redis store: decode quote: %w", err)
	}
	return &q, nil
}

// SetCurrentQuote replaces the current quote.
func (s *Store) SetCurrentQuote(ctx context.Context, q domain.Quote) error {
	raw, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("redis store: encode quote: %w", err)
	}
	if err := s.client.Set(ctx, s.quoteKey(), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis store: set quote: %w", err)
	}
	return nil
}

// AppendPolicy appends p to the policy list.
func (s *Store) AppendPolicy(ctx context.Context, p domain.Policy) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("redis store: encode policy: %w", err)
	}
	if err := s.client.RPush(ctx, s.policiesKey(), raw).Err(); err != nil {
		return fmt.Errorf("redis store: append policy: %w", err)
	}
	return nil
}

// Policies returns the policies in purchase order.
func (s *Store) Policies(ctx context.Context) ([]domain.Policy, error) {
	rows, err := s.client.LRange(ctx, s.policiesKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis store: list policies: %w", err)
	}

	out := make([]domain.Policy, 0, len(rows))
	for _, raw := range rows {
		var p domain.Policy
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("redis store: decode policy: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

// PutClaim inserts a claim, rejecting overwrite of an existing id.
func (s *Store) PutClaim(ctx context.Context, c domain.Claim) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("redis store: encode claim: %w", err)
	}

	inserted, err := s.client.HSetNX(ctx, s.claimsKey(), c.ID, raw).Result()
	if err != nil {
		return fmt.Errorf("redis store: put claim: %w", err)
	}
	if !inserted {
		return &domain.InvariantError{
			Op:  "store.PutClaim",
			Msg: fmt.Sprintf("claim id %s already exists", c.ID),
		}
	}

	if err := s.client.RPush(ctx, s.claimOrderKey(), c.ID).Err(); err != nil {
		return fmt.Errorf("redis store: record claim order: %w", err)
	}
	return nil
}

// Claim looks up a claim by id.
func (s *Store) Claim(ctx context.Context, id string) (domain.Claim, error) {
	raw, err := s.client.HGet(ctx, s.claimsKey(), id).Result()
	if errors.Is(err, backend.Nil) {
		return domain.Claim{}, domain.ErrClaimNotFound
	}
	if err != nil {
		return domain.Claim{}, fmt.Errorf("redis store: get claim: %w", err)
	}

	var c domain.Claim
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return domain.Claim{}, fmt.Errorf("redis store: decode claim: %w", err)
	}
	return c, nil
}

// Claims returns all claims in insertion order.
func (s *Store) Claims(ctx context.Context) ([]domain.Claim, error) {
	ids, err := s.client.LRange(ctx, s.claimOrderKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis store: list claims: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Claim{}, nil
	}

	rows, err := s.client.HMGet(ctx, s.claimsKey(), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis store: fetch claims: %w", err)
	}

	out := make([]domain.Claim, 0, len(rows))
	for i, row := range rows {
		raw, ok := row.(string)
		if !ok {
			return nil, fmt.Errorf("redis store: claim %s missing from hash", ids[i])
		}
		var c domain.Claim
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, fmt.Errorf("redis store: decode claim: %w", err)
		}
		out = append(out, c)
	}
	return out, nil
}
