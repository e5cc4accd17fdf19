// Package pricing computes priced quotes from trip parameters.
//
// The computation is pure and deterministic for identical inputs; the only
// non-deterministic part is the quote id, drawn from an injectable source.
// The engine never touches stored state; installing the result as the
// current quote is the caller's responsibility.
package pricing

import (
	"math"
	"strings"

	"github.com/voyantic/sojourn/pkg/catalog"
	"github.com/voyantic/sojourn/pkg/domain"
)

// Risk surcharge model constants.
const (
	surchargeSenior    = 0.5 // age > 60
	surchargeElderly   = 1.0 // age > 75, on top of senior
	surchargeWorldwide = 0.3
	surchargeAmericas  = 0.2
	surchargePerHazard = 0.2
	weekDays           = 7.0
	destWorldwide      = "worldwide"
	destAmericas       = "americas"
)

// highRisk is the fixed activity set matched case-insensitively.
// Duplicate entries in the request double-count on purpose.
var highRisk = map[string]struct{}{
	"skiing":   {},
	"scuba":    {},
	"trekking": {},
}

// Engine prices quotes against a catalog.
type Engine struct {
	catalog *catalog.Catalog
	ids     domain.IDSource
}

// New creates a pricing engine. A nil ids source falls back to domain.NewID.
func New(c *catalog.Catalog, ids domain.IDSource) *Engine {
	if ids == nil {
		ids = domain.NewID
	}
	return &Engine{catalog: c, ids: ids}
}

// Quote prices every catalog plan for the given request. One PricedPlan per
// template, in catalog order, each final price rounded to 2 decimals.
//
// Input sanity (numeric days/age, required fields) is the action bridge's
// job; the engine applies the multiplier model as-is.
func (e *Engine) Quote(req domain.QuoteRequest) domain.Quote {
	m := Multiplier(req)

	plans := e.catalog.Plans()
	priced := make([]domain.PricedPlan, len(plans))
	for i, p := range plans {
		priced[i] = domain.PricedPlan{
			PlanTemplate: p,
			FinalPrice:   round2(p.BasePrice * (req.Days / weekDays) * m),
		}
	}

	details := req
	details.Activities = append([]string(nil), req.Activities...)

	return domain.Quote{
		ID:      e.ids("Q"),
		Details: details,
		Plans:   priced,
	}
}

// Multiplier returns the risk multiplier for a request: 1.0 base, +0.5 past
// age 60 and a further +1.0 past 75, a destination surcharge for the two
// recognized tokens, and +0.2 per high-risk activity match (stacking,
// unbounded).
func Multiplier(req domain.QuoteRequest) float64 {
	m := 1.0

	if req.Age > 60 {
		m += surchargeSenior
	}
	if req.Age > 75 {
		m += surchargeElderly
	}

	// Destination tokens are matched case-sensitively; anything else adds
	// no surcharge.
	switch req.Destination {
	case destWorldwide:
		m += surchargeWorldwide
	case destAmericas:
		m += surchargeAmericas
	}

	for _, a := range req.Activities {
		if _, ok := highRisk[strings.ToLower(a)]; ok {
			m += surchargePerHazard
		}
	}

	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
