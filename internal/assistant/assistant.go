package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/preston-bernstein/nba-stats-agent/internal/llm"
	"github.com/preston-bernstein/nba-stats-agent/internal/logging"
	"github.com/preston-bernstein/nba-stats-agent/internal/metrics"
	"github.com/preston-bernstein/nba-stats-agent/internal/prompts"
	"github.com/preston-bernstein/nba-stats-agent/internal/tools"
)

const defaultMaxToolRounds = 4

// ErrTooManyToolRounds is returned when the model keeps requesting tools past the round limit.
var ErrTooManyToolRounds = errors.New("too many tool rounds")

// Options configures an Assistant. Model and MaxToolRounds fall back to defaults when empty.
type Options struct {
	Model         string
	MaxToolRounds int
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
}

// Assistant relays conversation turns between a chat provider and the tool registry.
type Assistant struct {
	provider  llm.ChatProvider
	registry  *tools.Registry
	toolDefs  []openai.Tool
	model     string
	maxRounds int
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// New builds an Assistant. The tool list is rendered once from registry.
func New(provider llm.ChatProvider, registry *tools.Registry, opts Options) (*Assistant, error) {
	if provider == nil {
		return nil, errors.New("chat provider required")
	}
	if registry == nil {
		return nil, errors.New("tool registry required")
	}
	if opts.Model == "" {
		opts.Model = openai.GPT4oMini
	}
	if opts.MaxToolRounds <= 0 {
		opts.MaxToolRounds = defaultMaxToolRounds
	}
	return &Assistant{
		provider:  provider,
		registry:  registry,
		toolDefs:  llm.ToOpenAITools(registry),
		model:     opts.Model,
		maxRounds: opts.MaxToolRounds,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
	}, nil
}

// Greeting is the opening line for a new session.
func (a *Assistant) Greeting() string {
	return prompts.Greeting()
}

// Reply appends text to the session and returns the model's answer, running any
// requested tools along the way. On error the session is left as it was before the turn.
func (a *Assistant) Reply(ctx context.Context, session *Session, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("message required")
	}
	if session == nil {
		return "", errors.New("session required")
	}

	session.turn.Lock()
	defer session.turn.Unlock()

	logger := logging.FromContext(ctx, a.logger)
	start := time.Now()
	mark := session.len()
	toolCalls := 0

	reply, err := a.run(ctx, logger, session, text, &toolCalls)
	a.metrics.RecordAssistantTurn(time.Since(start), toolCalls, err)
	if err != nil {
		session.rollback(mark)
		logging.Warn(logger, "assistant turn failed", err,
			slog.String(logging.FieldSessionID, session.ID),
			slog.Int("tool_calls", toolCalls),
		)
		return "", err
	}

	logging.Info(logger, "assistant turn complete",
		slog.String(logging.FieldSessionID, session.ID),
		slog.Int("tool_calls", toolCalls),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return reply, nil
}

func (a *Assistant) run(ctx context.Context, logger *slog.Logger, session *Session, text string, toolCalls *int) (string, error) {
	session.append(openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: text})

	for round := 0; round <= a.maxRounds; round++ {
		resp, err := a.provider.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    a.model,
			Messages: session.Messages(),
			Tools:    a.toolDefs,
		})
		if err != nil {
			return "", fmt.Errorf("chat completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", errors.New("chat completion: no choices")
		}

		msg := resp.Choices[0].Message
		session.append(msg)
		if len(msg.ToolCalls) == 0 {
			return msg.Content, nil
		}
		if round == a.maxRounds {
			break
		}

		for _, call := range msg.ToolCalls {
			*toolCalls++
			session.append(openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    a.callTool(ctx, logger, call),
				Name:       call.Function.Name,
				ToolCallID: call.ID,
			})
		}
	}
	return "", fmt.Errorf("%w: limit %d", ErrTooManyToolRounds, a.maxRounds)
}

// callTool runs one requested tool. Failures are reported back to the model as text.
func (a *Assistant) callTool(ctx context.Context, logger *slog.Logger, call openai.ToolCall) string {
	result, err := a.registry.Invoke(ctx, call.Function.Name, []byte(call.Function.Arguments))
	if err != nil {
		logging.Debug(logger, "tool call returned error to model",
			slog.String(logging.FieldTool, call.Function.Name),
			logging.ErrorAttr(err),
		)
		return "error: " + err.Error()
	}
	return result
}
