package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/voyantic/sojourn/pkg/domain"
	"github.com/voyantic/sojourn/pkg/schema"
)

// Stable action names, shared by every call site.
const (
	ActionGetQuote         = "get-quote"
	ActionListPlans        = "list-plans"
	ActionPurchasePolicy   = "purchase-policy"
	ActionFileClaim        = "file-claim"
	ActionCheckClaimStatus = "check-claim-status"
)

// minVisaCoverage is the coverage floor for the visa-compliant filter.
const minVisaCoverage = 30000

// Typed input records, one per action. Populated from validated raw args.

type getQuoteInput struct {
	Destination string   `mapstructure:"destination"`
	Days        float64  `mapstructure:"days"`
	Age         float64  `mapstructure:"age"`
	Activities  []string `mapstructure:"activities"`
}

type listPlansInput struct {
	VisaCompliant  bool `mapstructure:"visa_compliant"`
	ZeroDeductible bool `mapstructure:"zero_deductible"`
}

type purchasePolicyInput struct {
	QuoteID string `mapstructure:"quote_id"`
	PlanID  string `mapstructure:"plan_id"`
}

type fileClaimInput struct {
	PolicyID string `mapstructure:"policy_id"`
	Reason   string `mapstructure:"reason"`
}

type checkClaimStatusInput struct {
	ClaimID string `mapstructure:"claim_id"`
}

// ClaimStatusResult is the payload returned by check-claim-status.
type ClaimStatusResult struct {
	ClaimID string             `json:"claim_id"`
	Status  domain.ClaimStatus `json:"status"`
}

func (b *Bridge) registerActions() {
	b.register(Action{
		Name:        ActionGetQuote,
		Description: "Get a travel insurance quote based on trip details.",
		Schema: schema.Schema{
			"destination": schema.Required(schema.String(), "Region (europe, asia, americas, worldwide)"),
			"days":        schema.Required(schema.Number(), "Duration of trip in days"),
			"age":         schema.Required(schema.Number(), "Age of traveler"),
			"activities":  schema.Optional(schema.StringSlice(), "List of activities (Skiing, Scuba, Business, Trekking)"),
		},
		handler: b.handleGetQuote,
	})

	b.register(Action{
		Name:        ActionListPlans,
		Description: "List available insurance plans, optionally filtered.",
		Schema: schema.Schema{
			"visa_compliant":  schema.Optional(schema.Bool(), "Filter for Visa Compliant plans (min $30k coverage)"),
			"zero_deductible": schema.Optional(schema.Bool(), "Filter for Zero Deductible plans"),
		},
		handler: b.handleListPlans,
	})

	b.register(Action{
		Name:        ActionPurchasePolicy,
		Description: "Purchase a policy from a generated quote.",
		Schema: schema.Schema{
			"quote_id": schema.Required(schema.String(), "ID of the quote"),
			"plan_id":  schema.Required(schema.String(), "ID of the plan to purchase (basic, pro, nomad)"),
		},
		handler: b.handlePurchasePolicy,
	})

	b.register(Action{
		Name:        ActionFileClaim,
		Description: "File a claim on an existing policy.",
		Schema: schema.Schema{
			"policy_id": schema.Required(schema.String(), "Policy ID"),
			"reason":    schema.Required(schema.String(), "Reason for claim"),
		},
		handler: b.handleFileClaim,
	})

	b.register(Action{
		Name:        ActionCheckClaimStatus,
		Description: "Check the status of a filed claim.",
		Schema: schema.Schema{
			"claim_id": schema.Required(schema.String(), "Claim ID"),
		},
		handler: b.handleCheckClaimStatus,
	})
}

func (b *Bridge) handleGetQuote(ctx context.Context, args map[string]any) (any, error) {
	var in getQuoteInput
	if err := decodeInput(args, &in); err != nil {
		return nil, err
	}

	quote := b.pricer.Quote(domain.QuoteRequest{
		Destination: in.Destination,
		Days:        in.Days,
		Age:         in.Age,
		Activities:  in.Activities,
	})

	if err := b.store.SetCurrentQuote(ctx, quote); err != nil {
		return nil, fmt.Errorf("install quote: %w", err)
	}

	b.hooks.Render(&quote)
	b.hooks.Notify("Quote calculated!")
	return quote, nil
}

func (b *Bridge) handleListPlans(ctx context.Context, args map[string]any) (any, error) {
	var in listPlansInput
	if err := decodeInput(args, &in); err != nil {
		return nil, err
	}

	var current *domain.Quote
	var plans []domain.PricedPlan

	q, err := b.store.CurrentQuote(ctx)
	switch {
	case errors.Is(err, domain.ErrNoCurrentQuote):
		// No active quote: show the catalog at base rate.
		plans = b.catalog.BasePriced()
	case err != nil:
		return nil, fmt.Errorf("read current quote: %w", err)
	default:
		current = q
		plans = q.Plans
	}

	filtered := make([]domain.PricedPlan, 0, len(plans))
	for _, p := range plans {
		if in.VisaCompliant && p.Coverage < minVisaCoverage {
			continue
		}
		if in.ZeroDeductible && p.Deductible > 0 {
			continue
		}
		filtered = append(filtered, p)
	}

	b.hooks.Render(current)
	return filtered, nil
}

func (b *Bridge) handlePurchasePolicy(ctx context.Context, args map[string]any) (any, error) {
	var in purchasePolicyInput
	if err := decodeInput(args, &in); err != nil {
		return nil, err
	}

	q, err := b.store.CurrentQuote(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoCurrentQuote) {
			// "No quote" and "stale quote id" are the same failure.
			return nil, domain.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("read current quote: %w", err)
	}
	if q.ID != in.QuoteID {
		return nil, domain.ErrQuoteNotFound
	}

	plan, ok := q.Plan(in.PlanID)
	if !ok {
		return nil, domain.ErrPlanNotFound
	}

	policy := domain.Policy{
		ID:           b.ids("POL"),
		QuoteID:      q.ID,
		PlanID:       plan.ID,
		PlanName:     plan.Name,
		PurchaseDate: b.clock(),
	}
	if err := b.store.AppendPolicy(ctx, policy); err != nil {
		return nil, fmt.Errorf("append policy: %w", err)
	}

	b.hooks.Notify(fmt.Sprintf("Policy %s purchased!", policy.ID))
	b.hooks.Navigate(domain.ViewDashboard)
	return policy, nil
}

func (b *Bridge) handleFileClaim(ctx context.Context, args map[string]any) (any, error) {
	var in fileClaimInput
	if err := decodeInput(args, &in); err != nil {
		return nil, err
	}

	policies, err := b.store.Policies(ctx)
	if err != nil {
		return nil, fmt.Errorf("read policies: %w", err)
	}
	found := false
	for _, p := range policies {
		if p.ID == in.PolicyID {
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ErrPolicyNotFound
	}

	claim := b.adjudicator.Adjudicate(in.PolicyID, in.Reason)
	if err := b.store.PutClaim(ctx, claim); err != nil {
		return nil, err
	}

	b.hooks.Navigate(domain.ViewDashboard)
	b.hooks.Notify(fmt.Sprintf("Claim filed: %s", claim.Status))
	return claim, nil
}

func (b *Bridge) handleCheckClaimStatus(ctx context.Context, args map[string]any) (any, error) {
	var in checkClaimStatusInput
	if err := decodeInput(args, &in); err != nil {
		return nil, err
	}

	claim, err := b.store.Claim(ctx, in.ClaimID)
	if err != nil {
		return nil, err
	}

	b.hooks.Navigate(domain.ViewDashboard)
	return ClaimStatusResult{ClaimID: claim.ID, Status: claim.Status}, nil
}
