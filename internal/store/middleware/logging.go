package middleware

import (
	"context"
	"log/slog"

	"github.com/voyantic/sojourn/pkg/domain"
	"github.com/voyantic/sojourn/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.Store
	logger *slog.Logger
}

// NewLoggingMiddleware creates a middleware that records every store
// operation at debug level.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.Store) ports.Store {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) CurrentQuote(ctx context.Context) (*domain.Quote, error) {
	q, err := m.next.CurrentQuote(ctx)
	m.logger.Debug("store.CurrentQuote", "err", err)
	return q, err
}

func (m *loggingMiddleware) SetCurrentQuote(ctx context.Context, q domain.Quote) error {
	err := m.next.SetCurrentQuote(ctx, q)
	m.logger.Debug("store.SetCurrentQuote", "quote", q.ID, "err", err)
	return err
}

func (m *loggingMiddleware) AppendPolicy(ctx context.Context, p domain.Policy) error {
	err := m.next.AppendPolicy(ctx, p)
	m.logger.Debug("store.AppendPolicy", "policy", p.ID, "err", err)
	return err
}

func (m *loggingMiddleware) Policies(ctx context.Context) ([]domain.Policy, error) {
	policies, err := m.next.Policies(ctx)
	m.logger.Debug("store.Policies", "count", len(policies), "err", err)
	return policies, err
}

func (m *loggingMiddleware) PutClaim(ctx context.Context, c domain.Claim) error {
	err := m.next.PutClaim(ctx, c)
	m.logger.Debug("store.PutClaim", "claim", c.ID, "err", err)
	return err
}

func (m *loggingMiddleware) Claim(ctx context.Context, id string) (domain.Claim, error) {
	c, err := m.next.Claim(ctx, id)
	m.logger.Debug("store.Claim", "claim", id, "err", err)
	return c, err
}

func (m *loggingMiddleware) Claims(ctx context.Context) ([]domain.Claim, error) {
	claims, err := m.next.Claims(ctx)
	m.logger.Debug("store.Claims", "count", len(claims), "err", err)
	return claims, err
}
