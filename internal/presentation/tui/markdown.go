package tui

import (
	"fmt"
	"strings"

	"github.com/voyantic/sojourn/pkg/domain"
)

// QuoteMarkdown builds a markdown view of a quote with its priced plans.
func QuoteMarkdown(q *domain.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Quote %s\n\n", q.ID)
	fmt.Fprintf(&b, "**Destination:** %s · **Days:** %.0f · **Age:** %.0f\n\n", q.Details.Destination, q.Details.Days, q.Details.Age)
	if len(q.Details.Activities) > 0 {
		fmt.Fprintf(&b, "**Activities:** %s\n\n", strings.Join(q.Details.Activities, ", "))
	}
	b.WriteString(PlansMarkdown(q.Plans))
	return b.String()
}

// PlansMarkdown builds a markdown table of priced plans.
func PlansMarkdown(plans []domain.PricedPlan) string {
	var b strings.Builder
	b.WriteString("| Plan | Price | Coverage | Deductible |\n")
	b.WriteString("|------|-------|----------|------------|\n")
	for _, p := range plans {
		fmt.Fprintf(&b, "| %s | $%.2f | $%.0f | $%.0f |\n", p.Name, p.FinalPrice, p.Coverage, p.Deductible)
	}
	return b.String()
}

// PolicyMarkdown builds a markdown view of a purchased policy.
func PolicyMarkdown(p domain.Policy) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Policy %s\n\n", p.ID)
	fmt.Fprintf(&b, "- **Plan:** %s (%s)\n", p.PlanName, p.PlanID)
	fmt.Fprintf(&b, "- **Quote:** %s\n", p.QuoteID)
	fmt.Fprintf(&b, "- **Purchased:** %s\n", p.PurchaseDate.Format("2006-01-02"))
	return b.String()
}

// PoliciesMarkdown builds a markdown table of purchased policies.
func PoliciesMarkdown(policies []domain.Policy) string {
	if len(policies) == 0 {
		return "_No policies purchased yet._\n"
	}
	var b strings.Builder
	b.WriteString("| Policy | Plan | Purchased |\n")
	b.WriteString("|--------|------|-----------|\n")
	for _, p := range policies {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", p.ID, p.PlanName, p.PurchaseDate.Format("2006-01-02"))
	}
	return b.String()
}

// ClaimMarkdown builds a markdown view of a claim and its status.
func ClaimMarkdown(c domain.Claim) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Claim %s\n\n", c.ID)
	fmt.Fprintf(&b, "- **Policy:** %s\n", c.PolicyID)
	fmt.Fprintf(&b, "- **Reason:** %s\n", c.Reason)
	fmt.Fprintf(&b, "- **Status:** %s\n", c.Status)
	fmt.Fprintf(&b, "- **Filed:** %s\n", c.Date.Format("2006-01-02"))
	return b.String()
}
