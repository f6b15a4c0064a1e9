package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/nba-stats-agent/internal/http/requestutil"
	"github.com/preston-bernstein/nba-stats-agent/internal/logging"
)

// ChatRequest is one user turn. SessionID is optional; a new session is started when empty.
type ChatRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message"`
}

// ChatResponse carries the assistant's reply and the session to continue with.
type ChatResponse struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"reply"`
}

// Chat relays one conversation turn through the assistant.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	if h.assistant == nil {
		writeError(w, r, http.StatusServiceUnavailable, "assistant not configured", logger)
		return
	}

	var req ChatRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid chat request", logger)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, r, http.StatusBadRequest, "message required", logger)
		return
	}
	if req.SessionID != "" && !requestutil.ValidID(req.SessionID) {
		writeError(w, r, http.StatusBadRequest, "invalid session id", logger)
		return
	}

	session, created := h.sessions.Get(req.SessionID)
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldSessionID, session.ID))
	}
	if created {
		logging.Info(logger, "chat session started")
	}

	reply, err := h.assistant.Reply(logging.WithLogger(r.Context(), logger), session, req.Message)
	if err != nil {
		if r.Context().Err() != nil {
			writeError(w, r, http.StatusServiceUnavailable, "request cancelled", logger)
			return
		}
		logging.Warn(logger, "chat turn failed", err)
		writeError(w, r, http.StatusBadGateway, "assistant unavailable", logger)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{SessionID: session.ID, Reply: reply}, logger)
}

// Greeting returns the line that opens every conversation.
func (h *Handler) Greeting(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.assistant == nil {
		writeError(w, r, http.StatusServiceUnavailable, "assistant not configured", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"greeting": h.assistant.Greeting()}, h.logger)
}
