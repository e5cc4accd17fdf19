package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyantic/sojourn/internal/store/memory"
	"github.com/voyantic/sojourn/pkg/domain"
	"github.com/voyantic/sojourn/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunStoreContract(t, memory.NewStore())
}

func TestMemoryStore_QuoteIsolation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	q := domain.Quote{
		ID:      "Q-1",
		Details: domain.QuoteRequest{Destination: "europe", Days: 7, Age: 30, Activities: []string{"skiing"}},
		Plans: []domain.PricedPlan{
			{PlanTemplate: domain.PlanTemplate{ID: "basic", Name: "Basic Explorer", Features: []string{"Medical"}}, FinalPrice: 30},
		},
	}
	require.NoError(t, store.SetCurrentQuote(ctx, q))

	// Mutating the original and the returned copy must not leak into the store.
	q.Plans[0].FinalPrice = 999

	got, err := store.CurrentQuote(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30.0, got.Plans[0].FinalPrice)

	got.Plans[0].Features[0] = "Mutated"

	again, err := store.CurrentQuote(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Medical", again.Plans[0].Features[0])
}

func TestMemoryStore_PoliciesSnapshot(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.AppendPolicy(ctx, domain.Policy{ID: "POL-1"}))

	snap, err := store.Policies(ctx)
	require.NoError(t, err)
	snap[0].ID = "POL-MUTATED"

	again, err := store.Policies(ctx)
	require.NoError(t, err)
	assert.Equal(t, "POL-1", again[0].ID)
}
