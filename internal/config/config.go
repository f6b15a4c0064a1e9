package config

// Config holds runtime configuration for the binaries.
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string
	// AdminToken guards the admin endpoints; empty disables them.
	AdminToken  string
	MaxSessions int
	Metrics     MetricsConfig
	LLM         LLMConfig
	MCP         MCPConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		LogLevel:    envOrDefault(envLogLevel, "info"),
		LogFormat:   envOrDefault(envLogFormat, "text"),
		AdminToken:  envOrDefault(envAdminToken, ""),
		MaxSessions: intEnvOrDefault(envMaxSessions, defaultMaxSessions),
		Metrics:     loadMetrics(),
		LLM:         loadLLM(),
		MCP:         loadMCP(),
	}
}
