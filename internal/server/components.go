package server

import (
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/nba-stats-agent/internal/assistant"
	"github.com/preston-bernstein/nba-stats-agent/internal/config"
	"github.com/preston-bernstein/nba-stats-agent/internal/knowledge"
	"github.com/preston-bernstein/nba-stats-agent/internal/llm"
	"github.com/preston-bernstein/nba-stats-agent/internal/metrics"
	"github.com/preston-bernstein/nba-stats-agent/internal/tools"
)

// chatProviderFactory is swapped in tests to avoid real API clients.
var chatProviderFactory = llm.NewOpenAIProvider

// BuildRegistry validates the built-in knowledge tables and registers the NBA tools.
func BuildRegistry(logger *slog.Logger, recorder *metrics.Recorder) (*tools.Registry, error) {
	base := knowledge.New(logger)
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("knowledge base: %w", err)
	}
	return tools.NewNBARegistry(base, logger, recorder)
}

// NewAssistant builds the chat relay over the configured completion provider, wrapped
// with retries. It returns nil, nil when no API key is configured.
func NewAssistant(cfg config.LLMConfig, logger *slog.Logger, recorder *metrics.Recorder, registry *tools.Registry) (*assistant.Assistant, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	provider, err := chatProviderFactory(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("chat provider: %w", err)
	}
	retrying := llm.NewRetryingProvider(provider, logger, recorder, llm.ProviderOpenAI, cfg.MaxAttempts, cfg.RetryBackoff)
	return assistant.New(retrying, registry, assistant.Options{
		Model:         cfg.Model,
		MaxToolRounds: cfg.MaxToolRounds,
		Logger:        logger,
		Metrics:       recorder,
	})
}
