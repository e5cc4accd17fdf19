// Package catalog holds the fixed set of insurance plan templates.
//
// The catalog is immutable after construction. Plans keep their declaration
// order everywhere: quotes, filters, and rendering all preserve it.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/voyantic/sojourn/pkg/domain"
)

// Catalog is an ordered, immutable set of plan templates.
type Catalog struct {
	plans []domain.PlanTemplate
	byID  map[string]int
}

// Default returns the built-in product set.
func Default() *Catalog {
	c, err := New([]domain.PlanTemplate{
		{
			ID:         "basic",
			Name:       "Basic Explorer",
			BasePrice:  30,
			Coverage:   15000,
			Deductible: 500,
			Features:   []string{"Medical Emergencies", "Lost Luggage ($500)", "24/7 Support"},
		},
		{
			ID:         "pro",
			Name:       "Pro Voyager",
			BasePrice:  60,
			Coverage:   50000,
			Deductible: 100,
			Features:   []string{"Medical Emergencies", "Trip Cancellation", "Lost Luggage ($1500)", "Adventure Sports Cover"},
		},
		{
			ID:         "nomad",
			Name:       "Digital Nomad",
			BasePrice:  90,
			Coverage:   100000,
			Deductible: 0,
			Features:   []string{"Full Medical", "Laptop/Gear Cover", "Remote Work Disruption", "Visa Compliant"},
		},
	})
	if err != nil {
		// The built-in set is validated by its tests; a failure here is a
		// programming error.
		panic(err)
	}
	return c
}

// New builds a catalog from the given templates, validating ids and amounts.
func New(plans []domain.PlanTemplate) (*Catalog, error) {
	if len(plans) == 0 {
		return nil, fmt.Errorf("catalog: no plans defined")
	}

	byID := make(map[string]int, len(plans))
	owned := make([]domain.PlanTemplate, len(plans))
	for i, p := range plans {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog: plan %d has empty id", i)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate plan id %q", p.ID)
		}
		if p.BasePrice < 0 || p.Coverage < 0 || p.Deductible < 0 {
			return nil, fmt.Errorf("catalog: plan %q has a negative amount", p.ID)
		}
		byID[p.ID] = i
		owned[i] = p.Clone()
	}

	return &Catalog{plans: owned, byID: byID}, nil
}

// Load reads a catalog from a YAML file of the form:
//
//	plans:
//	  - id: basic
//	    name: Basic Explorer
//	    base_price: 30
//	    ...
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var doc struct {
		Plans []domain.PlanTemplate `yaml:"plans"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	return New(doc.Plans)
}

// Plans returns the templates in declaration order. The slice is a copy.
func (c *Catalog) Plans() []domain.PlanTemplate {
	out := make([]domain.PlanTemplate, len(c.plans))
	for i, p := range c.plans {
		out[i] = p.Clone()
	}
	return out
}

// Plan looks up a template by id.
func (c *Catalog) Plan(id string) (domain.PlanTemplate, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.PlanTemplate{}, false
	}
	return c.plans[i].Clone(), true
}

// Len returns the number of templates.
func (c *Catalog) Len() int { return len(c.plans) }

// BasePriced returns the catalog priced at base rate (final price equals
// the base price), the shape list-plans uses when no quote is active.
func (c *Catalog) BasePriced() []domain.PricedPlan {
	out := make([]domain.PricedPlan, len(c.plans))
	for i, p := range c.plans {
		out[i] = domain.PricedPlan{PlanTemplate: p.Clone(), FinalPrice: p.BasePrice}
	}
	return out
}
