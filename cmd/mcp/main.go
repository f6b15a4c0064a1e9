// Command mcp serves the NBA knowledge tools to MCP clients over stdio.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/nba-stats-agent/internal/config"
	"github.com/preston-bernstein/nba-stats-agent/internal/logging"
	"github.com/preston-bernstein/nba-stats-agent/internal/mcpserver"
	"github.com/preston-bernstein/nba-stats-agent/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	_ = godotenv.Load()

	cfg := config.Load()
	// stdout carries the protocol.
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "nba-stats-agent-mcp",
		Version: appVersion,
		Output:  os.Stderr,
	})

	registry, err := server.BuildRegistry(logger, nil)
	if err != nil {
		logging.Error(logger, "registry setup failed", err)
		os.Exit(1)
	}

	logging.Info(logger, "mcp stdio server starting")
	if err := mcpserver.ServeStdio(mcpserver.New(registry, appVersion, logger)); err != nil {
		logging.Error(logger, "mcp server stopped", err)
		os.Exit(1)
	}
}
