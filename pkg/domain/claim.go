package domain

import "time"

// ClaimStatus is assigned once at claim creation and never transitions.
type ClaimStatus string

const (
	StatusAutoApproved ClaimStatus = "Auto-Approved"
	StatusUnderReview  ClaimStatus = "Under Review"
)

// Claim is a filed request against a policy.
type Claim struct {
	ID       string      `json:"id"`
	PolicyID string      `json:"policy_id"`
	Reason   string      `json:"reason"`
	Status   ClaimStatus `json:"status"`
	Date     time.Time   `json:"date"`
}
