package schema

import (
	"errors"
	"fmt"
)

// ValidationError is a single field failure: missing required field, wrong
// primitive type, or a value outside an enumerated set.
type ValidationError struct {
	Key    string
	Reason string
	Value  any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Key, e.Reason)
}

// AggregateError collects every field failure of one validation pass.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:", len(e.Errors))
	for _, err := range e.Errors {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// IsValidation reports whether err stems from schema validation.
func IsValidation(err error) bool {
	var ve *ValidationError
	var ae *AggregateError
	return errors.As(err, &ae) || errors.As(err, &ve)
}

func validateEnum(allowed []string, value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("enum constraint requires a string, got %T", value)
	}
	for _, a := range allowed {
		if s == a {
			return nil
		}
	}
	return fmt.Errorf("value %q not in allowed set %v", s, allowed)
}
