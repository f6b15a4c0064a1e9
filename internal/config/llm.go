package config

import "time"

// LLMConfig controls how the assistant relay talks to the chat-completion provider.
type LLMConfig struct {
	APIKey        string
	BaseURL       string
	Model         string
	Timeout       time.Duration
	MaxAttempts   int
	RetryBackoff  time.Duration
	MaxToolRounds int
}

// Enabled reports whether an API key is configured.
func (c LLMConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadLLM() LLMConfig {
	return LLMConfig{
		APIKey:        envOrDefault(envOpenAIKey, ""),
		BaseURL:       envOrDefault(envOpenAIBaseURL, ""),
		Model:         envOrDefault(envOpenAIModel, defaultOpenAIModel),
		Timeout:       durationEnvOrDefault(envLLMTimeout, defaultLLMTimeout),
		MaxAttempts:   intEnvOrDefault(envLLMAttempts, defaultLLMAttempts),
		RetryBackoff:  durationEnvOrDefault(envLLMBackoff, defaultLLMBackoff),
		MaxToolRounds: intEnvOrDefault(envToolRounds, defaultToolRounds),
	}
}
