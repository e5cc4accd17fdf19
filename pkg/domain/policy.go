package domain

import "time"

// Policy is a purchased instance of one plan, tied to the quote it was
// bought from. Policies are append-only: no mutation or removal after
// creation.
type Policy struct {
	ID           string    `json:"id"`
	QuoteID      string    `json:"quote_id"`
	PlanID       string    `json:"plan_id"`
	PlanName     string    `json:"plan_name"` // snapshot, independent from catalog changes
	PurchaseDate time.Time `json:"purchase_date"`
}
