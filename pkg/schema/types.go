package schema

import "fmt"

// Type validates a single primitive shape.
type Type interface {
	// Name returns the JSON-schema type name ("string", "number",
	// "boolean", "array").
	Name() string
	// Validate checks whether value conforms to this type.
	Validate(value any) error
}

type stringType struct{}

func (stringType) Name() string { return "string" }

func (stringType) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

type numberType struct{}

func (numberType) Name() string { return "number" }

func (numberType) Validate(value any) error {
	switch value.(type) {
	case float64, float32, int, int8, int16, int32, int64:
		return nil
	default:
		return fmt.Errorf("expected number, got %T", value)
	}
}

type boolType struct{}

func (boolType) Name() string { return "boolean" }

func (boolType) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("expected boolean, got %T", value)
	}
	return nil
}

// stringSliceType accepts []string directly and []any whose elements are
// all strings, the shape JSON decoding produces.
type stringSliceType struct{}

func (stringSliceType) Name() string { return "array" }

func (stringSliceType) Validate(value any) error {
	switch v := value.(type) {
	case []string:
		return nil
	case []any:
		for i, elem := range v {
			if _, ok := elem.(string); !ok {
				return fmt.Errorf("element %d: expected string, got %T", i, elem)
			}
		}
		return nil
	default:
		return fmt.Errorf("expected array of strings, got %T", value)
	}
}

// String returns the string type.
func String() Type { return stringType{} }

// Number returns the numeric type. Whole and fractional JSON numbers both
// conform.
func Number() Type { return numberType{} }

// Bool returns the boolean type.
func Bool() Type { return boolType{} }

// StringSlice returns the array-of-string type.
func StringSlice() Type { return stringSliceType{} }
