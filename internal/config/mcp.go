package config

// MCPConfig controls the Model Context Protocol surface.
type MCPConfig struct {
	// HTTPEnabled mounts the streamable HTTP transport at /mcp on the main server.
	HTTPEnabled bool
}

func loadMCP() MCPConfig {
	return MCPConfig{
		HTTPEnabled: boolEnvOrDefault(envMCPHTTP, defaultMCPHTTPEnabled),
	}
}
