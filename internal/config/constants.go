package config

import "time"

const (
	envPort          = "PORT"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envOpenAIKey     = "OPENAI_API_KEY"
	envOpenAIBaseURL = "OPENAI_BASE_URL"
	envOpenAIModel   = "OPENAI_MODEL"
	envLLMTimeout    = "LLM_TIMEOUT"
	envLLMAttempts   = "LLM_MAX_ATTEMPTS"
	envLLMBackoff    = "LLM_RETRY_BACKOFF"
	envToolRounds    = "ASSISTANT_MAX_TOOL_ROUNDS"
	envMCPHTTP       = "MCP_HTTP_ENABLED"
	envAdminToken    = "ADMIN_TOKEN"
	envMaxSessions   = "CHAT_MAX_SESSIONS"

	defaultPort        = "4000"
	defaultMetricsPort = "9090"
	defaultServiceName = "nba-stats-agent"
	defaultOpenAIModel = "gpt-4o-mini"
	// Voice turns should not hang on a slow completion.
	defaultLLMTimeout     = 30 * time.Second
	defaultLLMAttempts    = 3
	defaultLLMBackoff     = 500 * time.Millisecond
	defaultToolRounds     = 4
	defaultMCPHTTPEnabled = true
	defaultMaxSessions    = 1000
)
