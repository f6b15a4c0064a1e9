package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/nba-stats-agent/internal/assistant"
	"github.com/preston-bernstein/nba-stats-agent/internal/http/requestutil"
	"github.com/preston-bernstein/nba-stats-agent/internal/logging"
)

// AdminHandler exposes admin-only endpoints (e.g., clearing chat sessions).
type AdminHandler struct {
	sessions *assistant.Store
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token rejects every request.
func NewAdminHandler(sessions *assistant.Store, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		sessions: sessions,
		token:    token,
		logger:   logger,
	}
}

// Register mounts the admin routes on r.
func (h *AdminHandler) Register(r *mux.Router) {
	r.HandleFunc("/admin/sessions/reset", h.ResetSessions).Methods(http.MethodPost)
}

// ResetSessions drops every stored conversation.
// Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) ResetSessions(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized", nil,
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String(logging.FieldClientIP, requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.sessions == nil {
		writeError(w, r, http.StatusServiceUnavailable, "session store not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	cleared := h.sessions.Reset()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"cleared": cleared,
	}, logger)
	logging.Info(logger, "admin sessions reset", slog.Int(logging.FieldCount, cleared))
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := r.Header.Get("Authorization")
	want := "Bearer " + h.token
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
