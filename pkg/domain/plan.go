package domain

// PlanTemplate describes one insurance product as sold. Templates are
// created once at startup and never mutated.
type PlanTemplate struct {
	ID         string   `json:"id" yaml:"id" mapstructure:"id"`
	Name       string   `json:"name" yaml:"name" mapstructure:"name"`
	BasePrice  float64  `json:"base_price" yaml:"base_price" mapstructure:"base_price"` // currency units per 7-day period
	Coverage   float64  `json:"coverage" yaml:"coverage" mapstructure:"coverage"`
	Deductible float64  `json:"deductible" yaml:"deductible" mapstructure:"deductible"`
	Features   []string `json:"features" yaml:"features" mapstructure:"features"`
}

// Clone returns a deep copy of the template.
func (p PlanTemplate) Clone() PlanTemplate {
	out := p
	out.Features = append([]string(nil), p.Features...)
	return out
}

// PricedPlan is a PlanTemplate priced for one specific quote.
// It is owned by exactly one Quote and never shared.
type PricedPlan struct {
	PlanTemplate `yaml:",inline"`
	FinalPrice   float64 `json:"final_price"`
}
