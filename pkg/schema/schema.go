package schema

import "sort"

// Field is one declared input: its type, whether the caller must supply
// it, a description for the tool channel, and an optional enumerated set
// of allowed values (strings only).
type Field struct {
	Type        Type
	IsRequired  bool
	Description string
	Enum        []string
}

// Required declares a mandatory field.
func Required(t Type, description string) Field {
	return Field{Type: t, IsRequired: true, Description: description}
}

// Optional declares a field callers may omit.
func Optional(t Type, description string) Field {
	return Field{Type: t, Description: description}
}

// WithEnum restricts a string field to the given value set.
func (f Field) WithEnum(values ...string) Field {
	f.Enum = values
	return f
}

// Schema maps field names to their declarations.
type Schema map[string]Field

// Validate checks data against the schema and returns all failures at
// once. Required fields must be present; present fields must conform to
// their type and enum; fields not declared in the schema are ignored.
func (s Schema) Validate(data map[string]any) error {
	var errs []error

	for _, name := range s.sortedNames() {
		field := s[name]

		value, exists := data[name]
		if !exists || value == nil {
			if field.IsRequired {
				errs = append(errs, &ValidationError{Key: name, Reason: "required"})
			}
			continue
		}

		if err := field.Type.Validate(value); err != nil {
			errs = append(errs, &ValidationError{Key: name, Reason: err.Error(), Value: value})
			continue
		}

		if len(field.Enum) > 0 {
			if err := validateEnum(field.Enum, value); err != nil {
				errs = append(errs, &ValidationError{Key: name, Reason: err.Error(), Value: value})
			}
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// RequiredNames returns the required field names in lexical order.
func (s Schema) RequiredNames() []string {
	var out []string
	for _, name := range s.sortedNames() {
		if s[name].IsRequired {
			out = append(out, name)
		}
	}
	return out
}

func (s Schema) sortedNames() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
