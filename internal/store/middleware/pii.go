package middleware

import (
	"context"
	"regexp"

	"github.com/voyantic/sojourn/pkg/domain"
	"github.com/voyantic/sojourn/pkg/ports"
)

type piiMiddleware struct {
	next     ports.Store
	patterns []*regexp.Regexp
}

// NewPIIMiddleware creates a middleware that masks claim reason text
// matching the patterns before it reaches the store. Quotes and
// policies carry no free text and pass through untouched.
func NewPIIMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.Store) ports.Store {
		return &piiMiddleware{next: next, patterns: patterns}
	}
}

func (m *piiMiddleware) PutClaim(ctx context.Context, c domain.Claim) error {
	// Mask a copy so the caller's claim keeps its original reason.
	masked := c
	for _, p := range m.patterns {
		masked.Reason = p.ReplaceAllString(masked.Reason, "***")
	}
	return m.next.PutClaim(ctx, masked)
}

func (m *piiMiddleware) CurrentQuote(ctx context.Context) (*domain.Quote, error) {
	return m.next.CurrentQuote(ctx)
}

func (m *piiMiddleware) SetCurrentQuote(ctx context.Context, q domain.Quote) error {
	return m.next.SetCurrentQuote(ctx, q)
}

func (m *piiMiddleware) AppendPolicy(ctx context.Context, p domain.Policy) error {
	return m.next.AppendPolicy(ctx, p)
}

func (m *piiMiddleware) Policies(ctx context.Context) ([]domain.Policy, error) {
	return m.next.Policies(ctx)
}

func (m *piiMiddleware) Claim(ctx context.Context, id string) (domain.Claim, error) {
	return m.next.Claim(ctx, id)
}

func (m *piiMiddleware) Claims(ctx context.Context) ([]domain.Claim, error) {
	return m.next.Claims(ctx)
}
