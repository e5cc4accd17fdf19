// Package schema declares and validates action input contracts.
//
// A Schema maps field names to Fields; each Field carries a Type, a
// required flag, and optionally an enumerated value set. Raw inputs arrive
// as map[string]any (decoded JSON or tool-call arguments) and are validated
// before any other component runs. Schemas also export themselves as
// JSON-schema properties for the tool-invocation channel.
//
//	s := schema.Schema{
//	    "destination": schema.Required(schema.String(), "Trip region"),
//	    "days":        schema.Required(schema.Number(), "Duration in days"),
//	    "activities":  schema.Optional(schema.StringSlice(), "Planned activities"),
//	}
//
//	if err := s.Validate(args); err != nil {
//	    // *schema.AggregateError with one *schema.ValidationError per field
//	}
package schema
