package tools

import (
	"context"
	"slices"
)

// Param declares one enumerated string parameter of a tool.
type Param struct {
	Name        string
	Description string
	// Enum lists the accepted wire values, in display order.
	Enum []string
	// Parse normalizes a raw value to a member of Enum. When nil, values must match
	// Enum exactly.
	Parse func(raw string) (string, bool)
}

func (p Param) resolve(raw string) (string, bool) {
	if p.Parse != nil {
		return p.Parse(raw)
	}
	if slices.Contains(p.Enum, raw) {
		return raw, true
	}
	return "", false
}

// Args holds validated, normalized argument values keyed by parameter name.
type Args map[string]string

// Result is what a handler hands back to the orchestrator. Fallback marks the
// "data not available" answer.
type Result struct {
	Text     string
	Fallback bool
}

// Handler runs a tool against validated arguments. It never fails; missing data is
// reported in the sentence itself.
type Handler func(ctx context.Context, args Args) Result

// Tool is a named operation an orchestrator can select and invoke.
type Tool struct {
	Name        string
	Description string
	Params      []Param
	Handler     Handler
}

// Schema returns the JSON schema object describing the tool's parameters.
func (t Tool) Schema() map[string]any {
	properties := make(map[string]any, len(t.Params))
	required := make([]string, 0, len(t.Params))
	for _, p := range t.Params {
		properties[p.Name] = map[string]any{
			"type":        "string",
			"description": p.Description,
			"enum":        slices.Clone(p.Enum),
		}
		required = append(required, p.Name)
	}
	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}
}

// Definition is the wire description of a tool.
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Definition returns the wire description of t.
func (t Tool) Definition() Definition {
	return Definition{Name: t.Name, Description: t.Description, Parameters: t.Schema()}
}

// bind validates raw arguments against the declared parameters.
func (t Tool) bind(raw map[string]any) (Args, error) {
	args := make(Args, len(t.Params))
	for _, p := range t.Params {
		val, ok := raw[p.Name]
		if !ok || val == nil {
			return nil, &ArgumentError{Tool: t.Name, Param: p.Name, Reason: "is required"}
		}
		s, ok := val.(string)
		if !ok {
			return nil, &ArgumentError{Tool: t.Name, Param: p.Name, Reason: "must be a string"}
		}
		resolved, ok := p.resolve(s)
		if !ok {
			return nil, &ArgumentError{Tool: t.Name, Param: p.Name, Value: s, Reason: "is not an accepted value"}
		}
		args[p.Name] = resolved
	}
	for name := range raw {
		if !slices.ContainsFunc(t.Params, func(p Param) bool { return p.Name == name }) {
			return nil, &ArgumentError{Tool: t.Name, Param: name, Reason: "is not a declared parameter"}
		}
	}
	return args, nil
}
