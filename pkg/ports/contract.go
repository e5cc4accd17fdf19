package ports

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyantic/sojourn/pkg/domain"
)

// RunStoreContract verifies that a Store implementation adheres to the
// Domain Store contract. Implementations call it from their own tests.
func RunStoreContract(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("Current Quote Empty", func(t *testing.T) {
		_, err := store.CurrentQuote(ctx)
		assert.ErrorIs(t, err, domain.ErrNoCurrentQuote)
	})

	t.Run("Set and Get Current Quote", func(t *testing.T) {
		q := sampleQuote("Q-CONTRACT-1")
		require.NoError(t, store.SetCurrentQuote(ctx, q))

		got, err := store.CurrentQuote(ctx)
		require.NoError(t, err)
		assert.Equal(t, q.ID, got.ID)
		assert.Equal(t, q.Details.Destination, got.Details.Destination)
		require.Len(t, got.Plans, len(q.Plans))
		assert.Equal(t, q.Plans[0].FinalPrice, got.Plans[0].FinalPrice)
	})

	t.Run("Set Replaces Prior Quote", func(t *testing.T) {
		require.NoError(t, store.SetCurrentQuote(ctx, sampleQuote("Q-CONTRACT-2")))
		require.NoError(t, store.SetCurrentQuote(ctx, sampleQuote("Q-CONTRACT-3")))

		got, err := store.CurrentQuote(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Q-CONTRACT-3", got.ID)
	})

	t.Run("Policies Append Order", func(t *testing.T) {
		base, err := store.Policies(ctx)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			p := domain.Policy{
				ID:           fmt.Sprintf("POL-CONTRACT-%d", i),
				QuoteID:      "Q-CONTRACT-3",
				PlanID:       "basic",
				PlanName:     "Basic Explorer",
				PurchaseDate: time.Now().UTC(),
			}
			require.NoError(t, store.AppendPolicy(ctx, p))
		}

		got, err := store.Policies(ctx)
		require.NoError(t, err)
		require.Len(t, got, len(base)+3)
		tail := got[len(base):]
		for i, p := range tail {
			assert.Equal(t, fmt.Sprintf("POL-CONTRACT-%d", i), p.ID)
		}
	})

	t.Run("Claims Insert and Lookup", func(t *testing.T) {
		c := domain.Claim{
			ID:       "CLM-CONTRACT-1",
			PolicyID: "POL-CONTRACT-0",
			Reason:   "lost bag",
			Status:   domain.StatusUnderReview,
			Date:     time.Now().UTC(),
		}
		require.NoError(t, store.PutClaim(ctx, c))

		got, err := store.Claim(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.Status, got.Status)
		assert.Equal(t, c.Reason, got.Reason)
	})

	t.Run("Claim Not Found", func(t *testing.T) {
		_, err := store.Claim(ctx, "CLM-MISSING")
		assert.ErrorIs(t, err, domain.ErrClaimNotFound)
	})

	t.Run("Claim Overwrite Rejected", func(t *testing.T) {
		dup := domain.Claim{
			ID:       "CLM-CONTRACT-1",
			PolicyID: "POL-CONTRACT-0",
			Reason:   "second attempt",
			Status:   domain.StatusAutoApproved,
			Date:     time.Now().UTC(),
		}
		err := store.PutClaim(ctx, dup)
		require.Error(t, err)

		var ie *domain.InvariantError
		assert.ErrorAs(t, err, &ie)

		// Original record untouched.
		got, err := store.Claim(ctx, "CLM-CONTRACT-1")
		require.NoError(t, err)
		assert.Equal(t, "lost bag", got.Reason)
	})

	t.Run("Claims Insertion Order", func(t *testing.T) {
		for i := 2; i <= 4; i++ {
			c := domain.Claim{
				ID:       fmt.Sprintf("CLM-CONTRACT-%d", i),
				PolicyID: "POL-CONTRACT-0",
				Reason:   "ordered",
				Status:   domain.StatusUnderReview,
				Date:     time.Now().UTC(),
			}
			require.NoError(t, store.PutClaim(ctx, c))
		}

		got, err := store.Claims(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(got), 4)

		var ids []string
		for _, c := range got {
			ids = append(ids, c.ID)
		}
		assert.Equal(t, []string{"CLM-CONTRACT-1", "CLM-CONTRACT-2", "CLM-CONTRACT-3", "CLM-CONTRACT-4"}, ids)
	})
}

func sampleQuote(id string) domain.Quote {
	return domain.Quote{
		ID: id,
		Details: domain.QuoteRequest{
			Destination: "worldwide",
			Days:        14,
			Age:         70,
			Activities:  []string{"Skiing"},
		},
		Plans: []domain.PricedPlan{
			{
				PlanTemplate: domain.PlanTemplate{
					ID:        "basic",
					Name:      "Basic Explorer",
					BasePrice: 30, Coverage: 15000, Deductible: 500,
					Features: []string{"Medical Emergencies"},
				},
				FinalPrice: 120,
			},
		},
	}
}
