package domain

// QuoteRequest is the snapshot of trip parameters a quote was priced from.
type QuoteRequest struct {
	Destination string   `json:"destination" mapstructure:"destination"`
	Days        float64  `json:"days" mapstructure:"days"`
	Age         float64  `json:"age" mapstructure:"age"`
	Activities  []string `json:"activities" mapstructure:"activities"`
}

// Quote is a priced snapshot of all catalog plans for one set of trip
// parameters. At most one quote is "current" at a time; installing a new
// quote discards the previous one.
type Quote struct {
	ID      string       `json:"id"`
	Details QuoteRequest `json:"details"`
	Plans   []PricedPlan `json:"plans"`
}

// Plan returns the priced plan with the given id, if the quote contains it.
func (q Quote) Plan(planID string) (PricedPlan, bool) {
	for _, p := range q.Plans {
		if p.ID == planID {
			return p, true
		}
	}
	return PricedPlan{}, false
}

// Clone returns a deep copy of the quote.
func (q Quote) Clone() Quote {
	out := q
	out.Details.Activities = append([]string(nil), q.Details.Activities...)
	out.Plans = make([]PricedPlan, len(q.Plans))
	for i, p := range q.Plans {
		out.Plans[i] = PricedPlan{PlanTemplate: p.PlanTemplate.Clone(), FinalPrice: p.FinalPrice}
	}
	return out
}
