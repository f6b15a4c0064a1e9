package prompts

import (
	"embed"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed system.txt
var systemPrompt string

//go:embed greeting.txt
var greeting string

//go:embed tools/*.yaml
var toolSpecs embed.FS

// SystemPrompt is the assistant persona sent as the first message of every session.
func SystemPrompt() string {
	return strings.TrimSpace(systemPrompt)
}

// Greeting is the opening line spoken when a session starts.
func Greeting() string {
	return strings.TrimSpace(greeting)
}

// ToolSpec is the declarative half of a tool: its name, description and parameters.
type ToolSpec struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Params      []ParamSpec `yaml:"params"`
}

// ParamSpec describes one parameter. Enum names the closed enumeration the
// parameter draws from ("team" or "position").
type ParamSpec struct {
	Name        string `yaml:"name"`
	Enum        string `yaml:"enum"`
	Description string `yaml:"description"`
}

// LoadToolSpec loads a tool specification from the embedded YAML files.
// The name is the tool name, e.g. "get_championships".
func LoadToolSpec(name string) (ToolSpec, error) {
	filename := fmt.Sprintf("tools/%s.yaml", name)
	data, err := toolSpecs.ReadFile(filename)
	if err != nil {
		return ToolSpec{}, fmt.Errorf("failed to read tool spec %s: %w", filename, err)
	}

	var spec ToolSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return ToolSpec{}, fmt.Errorf("failed to unmarshal tool spec %s: %w", filename, err)
	}
	if spec.Name != name {
		return ToolSpec{}, fmt.Errorf("tool spec %s declares name %q", filename, spec.Name)
	}

	return spec, nil
}
