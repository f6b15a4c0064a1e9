package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/nba-stats-agent/internal/assistant"
	"github.com/preston-bernstein/nba-stats-agent/internal/tools"
)

const maxBodyBytes = 64 << 10

// Assistant is the conversational relay behind /chat.
type Assistant interface {
	Greeting() string
	Reply(ctx context.Context, session *assistant.Session, text string) (string, error)
}

// Handler wires HTTP routes to the tool registry and the assistant relay.
type Handler struct {
	registry  *tools.Registry
	assistant Assistant
	sessions  *assistant.Store
	logger    *slog.Logger
	readyFn   func() error
}

// NewHandler constructs a Handler. asst may be nil when no completion provider is
// configured; readyFn may be nil to always report ready.
func NewHandler(registry *tools.Registry, asst Assistant, sessions *assistant.Store, logger *slog.Logger, readyFn func() error) *Handler {
	if sessions == nil {
		sessions = assistant.NewStore(0)
	}
	return &Handler{
		registry:  registry,
		assistant: asst,
		sessions:  sessions,
		logger:    logger,
		readyFn:   readyFn,
	}
}

// Register mounts the routes on r.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Ready).Methods(http.MethodGet)
	r.HandleFunc("/tools", h.ListTools).Methods(http.MethodGet)
	r.HandleFunc("/tools/{name}", h.InvokeTool).Methods(http.MethodPost)
	r.HandleFunc("/chat", h.Chat).Methods(http.MethodPost)
	r.HandleFunc("/chat/greeting", h.Greeting).Methods(http.MethodGet)
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.readyFn != nil {
		if err := h.readyFn(); err != nil {
			writeError(w, r, http.StatusServiceUnavailable, err.Error(), h.logger)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}
