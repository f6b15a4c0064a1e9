package llm

import (
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/preston-bernstein/nba-stats-agent/internal/tools"
)

// ToOpenAITools renders every registered tool as an OpenAI function tool.
func ToOpenAITools(registry *tools.Registry) []openai.Tool {
	all := registry.All()
	out := make([]openai.Tool, 0, len(all))
	for _, t := range all {
		properties := make(map[string]jsonschema.Definition, len(t.Params))
		required := make([]string, 0, len(t.Params))
		for _, p := range t.Params {
			properties[p.Name] = jsonschema.Definition{
				Type:        jsonschema.String,
				Description: p.Description,
				Enum:        p.Enum,
			}
			required = append(required, p.Name)
		}
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters: jsonschema.Definition{
					Type:                 jsonschema.Object,
					Properties:           properties,
					Required:             required,
					AdditionalProperties: false,
				},
			},
		})
	}
	return out
}
