package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-stats-agent/internal/assistant"
	"github.com/preston-bernstein/nba-stats-agent/internal/config"
	httpserver "github.com/preston-bernstein/nba-stats-agent/internal/http"
	"github.com/preston-bernstein/nba-stats-agent/internal/http/handlers"
	"github.com/preston-bernstein/nba-stats-agent/internal/logging"
	"github.com/preston-bernstein/nba-stats-agent/internal/mcpserver"
	"github.com/preston-bernstein/nba-stats-agent/internal/metrics"
	"github.com/preston-bernstein/nba-stats-agent/internal/tools"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	registry      *tools.Registry
	assistant     *assistant.Assistant
	sessions      *assistant.Store
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server. It fails when the knowledge tables are incomplete or the
// configured completion provider cannot be built.
func New(cfg config.Config, logger *slog.Logger, version string) (*Server, error) {
	return newServerWithMetrics(cfg, logger, version, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, version string, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	abort := func(err error) (*Server, error) {
		if metricsShutdown != nil {
			_ = metricsShutdown(context.Background())
		}
		return nil, err
	}

	registry, err := BuildRegistry(logger, recorder)
	if err != nil {
		return abort(err)
	}
	asst, err := NewAssistant(cfg.LLM, logger, recorder, registry)
	if err != nil {
		return abort(err)
	}
	if asst == nil {
		logging.Info(logger, "assistant disabled, OPENAI_API_KEY not set")
	}
	sessions := assistant.NewStore(cfg.MaxSessions)
	httpSrv := buildHTTPServer(cfg, version, registry, asst, sessions, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		registry:      registry,
		assistant:     asst,
		sessions:      sessions,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, metricsSrv httpServer) *Server {
	return &Server{
		cfg:           cfg,
		logger:        logger,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
	}
}

func buildHTTPServer(cfg config.Config, version string, registry *tools.Registry, asst *assistant.Assistant, sessions *assistant.Store, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	var relay handlers.Assistant
	if asst != nil {
		relay = asst
	}

	routes := httpserver.RouterConfig{
		Handler: handlers.NewHandler(registry, relay, sessions, logger, nil),
		Logger:  logger,
		Metrics: recorder,
	}
	// Optionally mount admin endpoints if token is set.
	if cfg.AdminToken != "" {
		routes.Admin = handlers.NewAdminHandler(sessions, cfg.AdminToken, logger)
	}
	if cfg.MCP.HTTPEnabled {
		routes.MCP = mcpserver.NewHTTPHandler(mcpserver.New(registry, version, logger))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpserver.NewRouter(routes),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP and metrics servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			logging.Warn(s.logger, "metrics shutdown failed", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logging.Warn(logger, "metrics setup failed, continuing without telemetry", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logging.Warn(logger, name+" server failed", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
