package domain

import (
	"errors"
	"fmt"
)

// ErrQuoteNotFound is returned when a quote id does not match the current
// quote. A missing current quote and a stale id are the same failure from
// the caller's point of view.
var ErrQuoteNotFound = errors.New("quote not found or expired")

// ErrPlanNotFound is returned when a plan id does not match any plan of the
// referenced quote.
var ErrPlanNotFound = errors.New("plan not found")

// ErrPolicyNotFound is returned when a policy id matches no purchased policy.
var ErrPolicyNotFound = errors.New("policy not found")

// ErrClaimNotFound is returned when a claim id is not present in the store.
var ErrClaimNotFound = errors.New("claim not found")

// ErrNoCurrentQuote is returned by the store when no quote has been
// installed yet.
var ErrNoCurrentQuote = errors.New("no current quote")

// ErrActionNotFound is returned when dispatching an unregistered action name.
var ErrActionNotFound = errors.New("action not found")

// NotFound reports whether err is one of the reference-lookup failures.
func NotFound(err error) bool {
	return errors.Is(err, ErrQuoteNotFound) ||
		errors.Is(err, ErrPlanNotFound) ||
		errors.Is(err, ErrPolicyNotFound) ||
		errors.Is(err, ErrClaimNotFound) ||
		errors.Is(err, ErrActionNotFound)
}

// InvariantError reports a violation of an invariant the core itself owns,
// such as an attempted overwrite of an existing claim id. It aborts the
// operation and must never be silently ignored.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated in %s: %s", e.Op, e.Msg)
}

// Invariant reports whether err carries an InvariantError.
func Invariant(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}
