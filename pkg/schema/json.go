package schema

// Property is the JSON-schema rendering of one field, used when actions are
// registered on the tool-invocation channel.
type Property struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	Items       *Items   `json:"items,omitempty"`
}

// Items describes array element types.
type Items struct {
	Type string `json:"type"`
}

// Properties renders the schema as JSON-schema object properties, keyed by
// field name.
func (s Schema) Properties() map[string]Property {
	out := make(map[string]Property, len(s))
	for name, field := range s {
		p := Property{
			Type:        field.Type.Name(),
			Description: field.Description,
			Enum:        field.Enum,
		}
		if p.Type == "array" {
			p.Items = &Items{Type: "string"}
		}
		out[name] = p
	}
	return out
}
