package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-stats-agent/internal/logging"
	"github.com/preston-bernstein/nba-stats-agent/internal/metrics"
)

// Registry holds the tools exposed to orchestrators. Tools are registered once during
// construction; after that the registry is read-only and safe for concurrent use.
type Registry struct {
	tools   map[string]Tool
	names   []string
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewRegistry constructs an empty Registry. logger and recorder may be nil.
func NewRegistry(logger *slog.Logger, recorder *metrics.Recorder) *Registry {
	return &Registry{
		tools:   make(map[string]Tool),
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Register adds a tool. Names must be unique and non-empty and every tool needs a handler.
func (r *Registry) Register(tool Tool) error {
	if strings.TrimSpace(tool.Name) == "" {
		return errors.New("tool name required")
	}
	if tool.Handler == nil {
		return fmt.Errorf("tool %s: handler required", tool.Name)
	}
	if _, exists := r.tools[tool.Name]; exists {
		return fmt.Errorf("tool %s: already registered", tool.Name)
	}
	for _, p := range tool.Params {
		if p.Name == "" || len(p.Enum) == 0 {
			return fmt.Errorf("tool %s: parameters need a name and enum values", tool.Name)
		}
	}
	r.tools[tool.Name] = tool
	r.names = append(r.names, tool.Name)
	slices.Sort(r.names)
	return nil
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// All returns every tool sorted by name.
func (r *Registry) All() []Tool {
	out := make([]Tool, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.tools[name])
	}
	return out
}

// Definitions returns the wire description of every tool sorted by name.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, 0, len(r.names))
	for _, t := range r.All() {
		out = append(out, t.Definition())
	}
	return out
}

// Invoke runs the named tool with JSON-encoded arguments (an object). An empty payload
// is treated as "{}".
func (r *Registry) Invoke(ctx context.Context, name string, rawArgs []byte) (string, error) {
	args := map[string]any{}
	if trimmed := bytes.TrimSpace(rawArgs); len(trimmed) > 0 {
		if err := json.Unmarshal(trimmed, &args); err != nil {
			r.record(ctx, name, 0, metrics.OutcomeRejected, err)
			return "", &ArgumentError{Tool: name, Reason: "arguments must be a JSON object"}
		}
	}
	return r.Call(ctx, name, args)
}

// Call runs the named tool with decoded arguments.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	start := r.now()

	tool, ok := r.tools[name]
	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownTool, name)
		r.record(ctx, name, r.now().Sub(start), metrics.OutcomeRejected, err)
		return "", err
	}

	bound, err := tool.bind(args)
	if err != nil {
		r.record(ctx, name, r.now().Sub(start), metrics.OutcomeRejected, err)
		return "", err
	}

	res := tool.Handler(ctx, bound)
	outcome := metrics.OutcomeOK
	if res.Fallback {
		outcome = metrics.OutcomeFallback
	}
	r.record(ctx, name, r.now().Sub(start), outcome, nil)
	return res.Text, nil
}

func (r *Registry) record(ctx context.Context, name string, elapsed time.Duration, outcome metrics.ToolOutcome, err error) {
	r.metrics.RecordToolCall(name, elapsed, outcome)

	logger := logging.FromContext(ctx, r.logger)
	attrs := []any{
		slog.String(logging.FieldTool, name),
		slog.String(logging.FieldOutcome, string(outcome)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	}
	if err != nil {
		logging.Warn(logger, "tool call rejected", err, attrs...)
		return
	}
	logging.Debug(logger, "tool call complete", attrs...)
}
