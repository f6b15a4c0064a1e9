package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/nba-stats-agent/internal/http/handlers"
	"github.com/preston-bernstein/nba-stats-agent/internal/http/middleware"
	"github.com/preston-bernstein/nba-stats-agent/internal/metrics"
)

// MCPPath is where the streamable MCP endpoint is mounted.
const MCPPath = "/mcp"

// RouterConfig collects what NewRouter mounts. Admin and MCP are optional.
type RouterConfig struct {
	Handler *handlers.Handler
	Admin   *handlers.AdminHandler
	MCP     nethttp.Handler
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// NewRouter registers HTTP routes and wraps them with request logging and metrics.
func NewRouter(cfg RouterConfig) nethttp.Handler {
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = handlers.MethodNotAllowed(cfg.Logger)
	r.NotFoundHandler = handlers.NotFound(cfg.Logger)

	cfg.Handler.Register(r)
	if cfg.Admin != nil {
		cfg.Admin.Register(r)
	}
	if cfg.MCP != nil {
		r.Handle(MCPPath, cfg.MCP)
	}

	return middleware.LoggingMiddleware(cfg.Logger, cfg.Metrics, r)
}
