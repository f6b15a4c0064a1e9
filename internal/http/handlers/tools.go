package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/nba-stats-agent/internal/logging"
	"github.com/preston-bernstein/nba-stats-agent/internal/tools"
)

// ToolsResponse lists the registered tools.
type ToolsResponse struct {
	Tools []tools.Definition `json:"tools"`
}

// InvokeResponse carries the sentence produced by a tool.
type InvokeResponse struct {
	Tool   string `json:"tool"`
	Result string `json:"result"`
}

// ListTools returns every tool with its parameter schema.
func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, ToolsResponse{Tools: h.registry.Definitions()}, h.logger)
}

// InvokeTool runs the named tool with the JSON object in the request body.
func (h *Handler) InvokeTool(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	name := mux.Vars(r)["name"]

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large", logger)
		return
	}

	result, err := h.registry.Invoke(r.Context(), name, body)
	switch {
	case errors.Is(err, tools.ErrUnknownTool):
		writeError(w, r, http.StatusNotFound, "tool not found", logger)
		return
	case err != nil:
		if argErr, ok := tools.AsArgumentError(err); ok {
			writeError(w, r, http.StatusBadRequest, argErr.Error(), logger)
			return
		}
		logging.Error(logger, "tool invocation failed", err, slog.String(logging.FieldTool, name))
		writeError(w, r, http.StatusInternalServerError, "tool invocation failed", logger)
		return
	}

	writeJSON(w, http.StatusOK, InvokeResponse{Tool: name, Result: result}, logger)
}
