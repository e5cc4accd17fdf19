package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/voyantic/sojourn/internal/store/redis"
	"github.com/voyantic/sojourn/pkg/domain"
	"github.com/voyantic/sojourn/pkg/ports"
)

func newTestStore(t *testing.T) *redisstore.Store {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return redisstore.NewFromClient(client)
}

func TestRedisStore_Contract(t *testing.T) {
	ports.RunStoreContract(t, newTestStore(t))
}

func TestRedisStore_QuoteRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	q := domain.Quote{
		ID:      "Q-RT",
		Details: domain.QuoteRequest{Destination: "americas", Days: 10, Age: 45, Activities: []string{"scuba"}},
		Plans: []domain.PricedPlan{
			{PlanTemplate: domain.PlanTemplate{ID: "pro", Name: "Pro Voyager", BasePrice: 60}, FinalPrice: 120.5},
		},
	}
	require.NoError(t, store.SetCurrentQuote(ctx, q))

	got, err := store.CurrentQuote(ctx)
	require.NoError(t, err)
	assert.Equal(t, q.ID, got.ID)
	assert.Equal(t, q.Details.Activities, got.Details.Activities)
	assert.Equal(t, 120.5, got.Plans[0].FinalPrice)
}

func TestRedisStore_PolicyDatesSurviveEncoding(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	when := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	require.NoError(t, store.AppendPolicy(ctx, domain.Policy{
		ID: "POL-RT", QuoteID: "Q-RT", PlanID: "pro", PlanName: "Pro Voyager", PurchaseDate: when,
	}))

	got, err := store.Policies(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, when.Equal(got[0].PurchaseDate))
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := redisstore.New("not-a-url")
	assert.Error(t, err)
}
