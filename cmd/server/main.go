package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/nba-stats-agent/internal/config"
	"github.com/preston-bernstein/nba-stats-agent/internal/logging"
	"github.com/preston-bernstein/nba-stats-agent/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "nba-stats-agent",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger, appVersion)
	if err != nil {
		logging.Error(logger, "server setup failed", err)
		os.Exit(1)
	}
	srv.Run(ctx, stop)
}
