package bridge_test

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyantic/sojourn/internal/store/memory"
	"github.com/voyantic/sojourn/pkg/bridge"
	"github.com/voyantic/sojourn/pkg/catalog"
	"github.com/voyantic/sojourn/pkg/claims"
	"github.com/voyantic/sojourn/pkg/domain"
	"github.com/voyantic/sojourn/pkg/schema"
)

func newBridge(t *testing.T, opts ...bridge.Option) (*bridge.Bridge, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return bridge.New(store, catalog.Default(), opts...), store
}

func getQuoteArgs() map[string]any {
	return map[string]any{
		"destination": "worldwide",
		"days":        14.0,
		"age":         70.0,
		"activities":  []any{"Skiing"},
	}
}

func mustQuote(t *testing.T, b *bridge.Bridge) domain.Quote {
	t.Helper()
	res, err := b.Dispatch(context.Background(), bridge.ActionGetQuote, getQuoteArgs())
	require.NoError(t, err)
	q, ok := res.(domain.Quote)
	require.True(t, ok, "get-quote should return a domain.Quote, got %T", res)
	return q
}

func mustPurchase(t *testing.T, b *bridge.Bridge, quoteID, planID string) domain.Policy {
	t.Helper()
	res, err := b.Dispatch(context.Background(), bridge.ActionPurchasePolicy, map[string]any{
		"quote_id": quoteID,
		"plan_id":  planID,
	})
	require.NoError(t, err)
	p, ok := res.(domain.Policy)
	require.True(t, ok, "purchase-policy should return a domain.Policy, got %T", res)
	return p
}

func TestGetQuote_ScenarioWorldwideSenior(t *testing.T) {
	b, store := newBridge(t)

	q := mustQuote(t, b)

	// multiplier 2.0: basic 30 * (14/7) * 2.0 = 120.00
	require.Len(t, q.Plans, 3)
	assert.Equal(t, 120.0, q.Plans[0].FinalPrice)

	// Installed as the current quote.
	current, err := store.CurrentQuote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, q.ID, current.ID)
}

func TestGetQuote_ValidationFailsBeforeMutation(t *testing.T) {
	b, store := newBridge(t)

	_, err := b.Dispatch(context.Background(), bridge.ActionGetQuote, map[string]any{
		"destination": "worldwide",
		"days":        "fourteen",
	})
	require.Error(t, err)
	assert.True(t, schema.IsValidation(err))

	var aggr *schema.AggregateError
	require.ErrorAs(t, err, &aggr)
	assert.Len(t, aggr.Errors, 2) // age missing, days wrong type

	_, err = store.CurrentQuote(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoCurrentQuote, "failed validation must not install a quote")
}

func TestListPlans_BasePricedWithoutQuote(t *testing.T) {
	b, _ := newBridge(t)

	res, err := b.Dispatch(context.Background(), bridge.ActionListPlans, map[string]any{})
	require.NoError(t, err)

	plans, ok := res.([]domain.PricedPlan)
	require.True(t, ok)
	require.Len(t, plans, 3)
	for _, p := range plans {
		assert.Equal(t, p.BasePrice, p.FinalPrice)
	}
}

func TestListPlans_Filters(t *testing.T) {
	b, _ := newBridge(t)
	mustQuote(t, b)

	cases := []struct {
		name string
		args map[string]any
		want []string
	}{
		{"No Filters", map[string]any{}, []string{"basic", "pro", "nomad"}},
		{"Visa Compliant", map[string]any{"visa_compliant": true}, []string{"pro", "nomad"}},
		{"Zero Deductible", map[string]any{"zero_deductible": true}, []string{"nomad"}},
		{"Both", map[string]any{"visa_compliant": true, "zero_deductible": true}, []string{"nomad"}},
		{"Filters Off Explicitly", map[string]any{"visa_compliant": false, "zero_deductible": false}, []string{"basic", "pro", "nomad"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := b.Dispatch(context.Background(), bridge.ActionListPlans, tc.args)
			require.NoError(t, err)

			plans := res.([]domain.PricedPlan)
			var ids []string
			for _, p := range plans {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestListPlans_Idempotent(t *testing.T) {
	b, _ := newBridge(t)
	mustQuote(t, b)

	args := map[string]any{"visa_compliant": true}
	first, err := b.Dispatch(context.Background(), bridge.ActionListPlans, args)
	require.NoError(t, err)
	second, err := b.Dispatch(context.Background(), bridge.ActionListPlans, args)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPurchasePolicy_Scenario(t *testing.T) {
	b, store := newBridge(t)
	q := mustQuote(t, b)

	p := mustPurchase(t, b, q.ID, "basic")

	assert.Equal(t, "Basic Explorer", p.PlanName)
	assert.Equal(t, q.ID, p.QuoteID)
	assert.Equal(t, "basic", p.PlanID)
	assert.Contains(t, p.ID, "POL-")

	policies, err := store.Policies(context.Background())
	require.NoError(t, err)
	assert.Len(t, policies, 1)
}

func TestPurchasePolicy_UnknownQuote(t *testing.T) {
	b, store := newBridge(t)
	mustQuote(t, b)

	_, err := b.Dispatch(context.Background(), bridge.ActionPurchasePolicy, map[string]any{
		"quote_id": "nonexistent",
		"plan_id":  "basic",
	})
	assert.ErrorIs(t, err, domain.ErrQuoteNotFound)

	policies, err2 := store.Policies(context.Background())
	require.NoError(t, err2)
	assert.Empty(t, policies, "failed purchase must not append a policy")
}

func TestPurchasePolicy_NoCurrentQuote(t *testing.T) {
	b, _ := newBridge(t)

	// No quote at all: same error as a stale quote id.
	_, err := b.Dispatch(context.Background(), bridge.ActionPurchasePolicy, map[string]any{
		"quote_id": "Q-ANYTHING",
		"plan_id":  "basic",
	})
	assert.ErrorIs(t, err, domain.ErrQuoteNotFound)
}

func TestPurchasePolicy_UnknownPlan(t *testing.T) {
	b, store := newBridge(t)
	q := mustQuote(t, b)

	_, err := b.Dispatch(context.Background(), bridge.ActionPurchasePolicy, map[string]any{
		"quote_id": q.ID,
		"plan_id":  "gold",
	})
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)

	policies, err2 := store.Policies(context.Background())
	require.NoError(t, err2)
	assert.Empty(t, policies)
}

func TestPurchasePolicy_StaleAfterRequote(t *testing.T) {
	b, _ := newBridge(t)
	old := mustQuote(t, b)
	mustQuote(t, b) // replaces the current quote

	_, err := b.Dispatch(context.Background(), bridge.ActionPurchasePolicy, map[string]any{
		"quote_id": old.ID,
		"plan_id":  "basic",
	})
	assert.ErrorIs(t, err, domain.ErrQuoteNotFound)
}

func TestFileClaim_Scenario(t *testing.T) {
	b, store := newBridge(t)
	q := mustQuote(t, b)
	p := mustPurchase(t, b, q.ID, "basic")

	res, err := b.Dispatch(context.Background(), bridge.ActionFileClaim, map[string]any{
		"policy_id": p.ID,
		"reason":    "lost bag",
	})
	require.NoError(t, err)

	claim, ok := res.(domain.Claim)
	require.True(t, ok)
	assert.Contains(t, claim.ID, "CLM-")
	assert.Equal(t, p.ID, claim.PolicyID)
	assert.Contains(t, []domain.ClaimStatus{domain.StatusAutoApproved, domain.StatusUnderReview}, claim.Status)

	// Status is assigned once; repeated checks return the same value.
	for i := 0; i < 5; i++ {
		res, err := b.Dispatch(context.Background(), bridge.ActionCheckClaimStatus, map[string]any{
			"claim_id": claim.ID,
		})
		require.NoError(t, err)
		status := res.(bridge.ClaimStatusResult)
		assert.Equal(t, claim.Status, status.Status)
	}

	stored, err := store.Claim(context.Background(), claim.ID)
	require.NoError(t, err)
	assert.Equal(t, claim.Status, stored.Status)
}

func TestFileClaim_NoPolicies(t *testing.T) {
	b, store := newBridge(t)

	_, err := b.Dispatch(context.Background(), bridge.ActionFileClaim, map[string]any{
		"policy_id": "POL-NONE",
		"reason":    "anything",
	})
	assert.ErrorIs(t, err, domain.ErrPolicyNotFound)

	claims2, err2 := store.Claims(context.Background())
	require.NoError(t, err2)
	assert.Empty(t, claims2)
}

func TestFileClaim_SeededAdjudication(t *testing.T) {
	adj := claims.New(claims.WithRand(rand.New(rand.NewSource(7))))
	b, _ := newBridge(t, bridge.WithAdjudicator(adj))

	want := claims.New(claims.WithRand(rand.New(rand.NewSource(7)))).Adjudicate("x", "y").Status

	q := mustQuote(t, b)
	p := mustPurchase(t, b, q.ID, "pro")
	res, err := b.Dispatch(context.Background(), bridge.ActionFileClaim, map[string]any{
		"policy_id": p.ID,
		"reason":    "cancelled flight",
	})
	require.NoError(t, err)
	assert.Equal(t, want, res.(domain.Claim).Status)
}

func TestFileClaim_DuplicateIDRejected(t *testing.T) {
	// An id source that repeats itself trips the store's no-overwrite rule.
	fixed := func(prefix string) string { return prefix + "-FIXED" }
	b, store := newBridge(t, bridge.WithIDSource(fixed))

	q := mustQuote(t, b)
	p := mustPurchase(t, b, q.ID, "basic")

	args := map[string]any{"policy_id": p.ID, "reason": "lost bag"}
	_, err := b.Dispatch(context.Background(), bridge.ActionFileClaim, args)
	require.NoError(t, err)

	_, err = b.Dispatch(context.Background(), bridge.ActionFileClaim, args)
	require.Error(t, err)
	assert.True(t, domain.Invariant(err))

	stored, err := store.Claim(context.Background(), "CLM-FIXED")
	require.NoError(t, err)
	assert.Equal(t, "lost bag", stored.Reason)
}

func TestCheckClaimStatus_Unknown(t *testing.T) {
	b, _ := newBridge(t)

	_, err := b.Dispatch(context.Background(), bridge.ActionCheckClaimStatus, map[string]any{
		"claim_id": "CLM-NONE",
	})
	assert.ErrorIs(t, err, domain.ErrClaimNotFound)
}

func TestDispatch_UnknownAction(t *testing.T) {
	b, _ := newBridge(t)

	_, err := b.Dispatch(context.Background(), "self-destruct", map[string]any{})
	assert.ErrorIs(t, err, domain.ErrActionNotFound)
}

func TestDispatch_HooksFired(t *testing.T) {
	var mu sync.Mutex
	var notifications []string
	var views []string
	rendered := 0

	hooks := domain.UIHooks{
		OnRender: func(q *domain.Quote) {
			mu.Lock()
			rendered++
			mu.Unlock()
		},
		OnNavigate: func(view string) {
			mu.Lock()
			views = append(views, view)
			mu.Unlock()
		},
		OnNotify: func(msg string) {
			mu.Lock()
			notifications = append(notifications, msg)
			mu.Unlock()
		},
	}

	b, _ := newBridge(t, bridge.WithHooks(hooks))

	q := mustQuote(t, b)
	p := mustPurchase(t, b, q.ID, "nomad")
	res, err := b.Dispatch(context.Background(), bridge.ActionFileClaim, map[string]any{
		"policy_id": p.ID,
		"reason":    "stolen laptop",
	})
	require.NoError(t, err)
	claim := res.(domain.Claim)

	_, err = b.Dispatch(context.Background(), bridge.ActionCheckClaimStatus, map[string]any{"claim_id": claim.ID})
	require.NoError(t, err)

	assert.Equal(t, 1, rendered, "get-quote renders once")
	assert.Equal(t, []string{domain.ViewDashboard, domain.ViewDashboard, domain.ViewDashboard}, views)
	require.Len(t, notifications, 3)
	assert.Equal(t, "Quote calculated!", notifications[0])
	assert.Contains(t, notifications[1], "purchased!")
	assert.Contains(t, notifications[2], "Claim filed:")
}

func TestDispatch_Deterministic(t *testing.T) {
	// Fixed id source and clock make dispatch results reproducible.
	n := 0
	ids := func(prefix string) string {
		n++
		return fmt.Sprintf("%s-%04d", prefix, n)
	}
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	b, _ := newBridge(t, bridge.WithIDSource(ids), bridge.WithClock(func() time.Time { return now }))

	q := mustQuote(t, b)
	assert.Equal(t, "Q-0001", q.ID)

	p := mustPurchase(t, b, q.ID, "basic")
	assert.Equal(t, "POL-0002", p.ID)
	assert.Equal(t, now, p.PurchaseDate)
}

func TestDispatch_PolicyIDUniqueness(t *testing.T) {
	b, _ := newBridge(t)
	q := mustQuote(t, b)

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		p := mustPurchase(t, b, q.ID, "pro")
		_, dup := seen[p.ID]
		require.False(t, dup, "duplicate policy id %s", p.ID)
		seen[p.ID] = struct{}{}
	}
}

func TestDispatch_ConcurrentPurchases(t *testing.T) {
	b, store := newBridge(t)
	q := mustQuote(t, b)

	const workers = 16
	const perWorker = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, err := b.Dispatch(context.Background(), bridge.ActionPurchasePolicy, map[string]any{
					"quote_id": q.ID,
					"plan_id":  "basic",
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	policies, err := store.Policies(context.Background())
	require.NoError(t, err)
	assert.Len(t, policies, workers*perWorker)
}

func TestActions_RegistrationOrder(t *testing.T) {
	b, _ := newBridge(t)

	var names []string
	for _, a := range b.Actions() {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{
		bridge.ActionGetQuote,
		bridge.ActionListPlans,
		bridge.ActionPurchasePolicy,
		bridge.ActionFileClaim,
		bridge.ActionCheckClaimStatus,
	}, names)

	for _, a := range b.Actions() {
		assert.NotEmpty(t, a.Description)
		assert.NotEmpty(t, a.Schema)
	}
}
