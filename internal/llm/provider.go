package llm

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/preston-bernstein/nba-stats-agent/internal/config"
	"github.com/preston-bernstein/nba-stats-agent/internal/logging"
)

// ProviderOpenAI names the OpenAI-compatible provider in logs and metrics.
const ProviderOpenAI = "openai"

// ChatProvider produces chat completions. *openai.Client satisfies it.
type ChatProvider interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type openAIProvider struct {
	client  ChatProvider
	timeout time.Duration
	logger  *slog.Logger
}

// NewOpenAIProvider builds a provider for the OpenAI API or any compatible endpoint
// configured through BaseURL.
func NewOpenAIProvider(cfg config.LLMConfig, logger *slog.Logger) (ChatProvider, error) {
	if !cfg.Enabled() {
		return nil, errors.New("openai api key required")
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Transport: newRetryAfterTransport(nil)}
	return newOpenAIProvider(openai.NewClientWithConfig(clientCfg), cfg.Timeout, logger), nil
}

func newOpenAIProvider(client ChatProvider, timeout time.Duration, logger *slog.Logger) *openAIProvider {
	return &openAIProvider{client: client, timeout: timeout, logger: logger}
}

func (p *openAIProvider) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	ctx, hint := withRetryAfterHint(ctx)
	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelDebug, ProviderOpenAI, "chat completion failed", logging.ErrorAttr(err))
		return openai.ChatCompletionResponse{}, classify(ProviderOpenAI, err, hint.get())
	}
	if len(resp.Choices) == 0 {
		return openai.ChatCompletionResponse{}, errors.New("no choices in completion response")
	}
	return resp, nil
}

// logWithProvider emits a log entry if logger is non-nil and always includes provider name.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String("provider", provider))
	logger.Log(ctx, level, msg, args...)
}
