package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

func lookup(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envOrDefault(key, defaultValue string) string {
	if val := lookup(key); val != "" {
		return val
	}
	return defaultValue
}

// Unparseable and non-positive values fall back to the default.
func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := lookup(key)
	if raw == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func intEnvOrDefault(key string, defaultValue int) int {
	raw := lookup(key)
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	switch strings.ToLower(lookup(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}
