package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/nba-stats-agent/internal/assistant"
	"github.com/preston-bernstein/nba-stats-agent/internal/knowledge"
	"github.com/preston-bernstein/nba-stats-agent/internal/testutil"
	"github.com/preston-bernstein/nba-stats-agent/internal/tools"
)

type stubAssistant struct {
	reply    string
	err      error
	sessions []string
}

func (s *stubAssistant) Greeting() string { return "Hey there!" }

func (s *stubAssistant) Reply(ctx context.Context, session *assistant.Session, text string) (string, error) {
	s.sessions = append(s.sessions, session.ID)
	if s.err != nil {
		return "", s.err
	}
	return s.reply + " " + text, nil
}

func newRouter(t *testing.T, asst Assistant, readyFn func() error) http.Handler {
	t.Helper()
	reg, err := tools.NewNBARegistry(knowledge.New(nil), nil, nil)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	r := mux.NewRouter()
	NewHandler(reg, asst, nil, nil, readyFn).Register(r)
	r.MethodNotAllowedHandler = MethodNotAllowed(nil)
	r.NotFoundHandler = NotFound(nil)
	return r
}

func TestHealth(t *testing.T) {
	rr := testutil.Serve(newRouter(t, nil, nil), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := NewHandler(tools.NewRegistry(nil, nil), nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req.WithContext(ctx))

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestReady(t *testing.T) {
	rr := testutil.Serve(newRouter(t, nil, nil), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(newRouter(t, nil, func() error { return errors.New("tables incomplete") }), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	if !strings.Contains(rr.Body.String(), "tables incomplete") {
		t.Fatalf("expected readiness error in body, got %s", rr.Body.String())
	}
}

func TestListTools(t *testing.T) {
	rr := testutil.Serve(newRouter(t, nil, nil), http.MethodGet, "/tools", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp ToolsResponse
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Tools) != 4 {
		t.Fatalf("expected 4 tools, got %d", len(resp.Tools))
	}
	first := resp.Tools[0]
	if first.Name != tools.ToolChampionships || first.Description == "" {
		t.Fatalf("unexpected first tool %+v", first)
	}
	props := first.Parameters["properties"].(map[string]any)
	team := props["team"].(map[string]any)
	if enum := team["enum"].([]any); len(enum) != 30 {
		t.Fatalf("expected 30 teams in enum, got %d", len(enum))
	}
}

func TestInvokeTool(t *testing.T) {
	router := newRouter(t, nil, nil)
	rr := testutil.ServeJSON(t, router, http.MethodPost, "/tools/get_team_record", map[string]string{"team": "thunder"})
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp InvokeResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Tool != tools.ToolTeamRecord || resp.Result != "The Thunder current record is 27-5." {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestInvokeToolErrors(t *testing.T) {
	router := newRouter(t, nil, nil)
	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"unknown tool", http.MethodPost, "/tools/get_mvp", `{}`, http.StatusNotFound},
		{"off enum", http.MethodPost, "/tools/get_championships", `{"team":"supersonics"}`, http.StatusBadRequest},
		{"missing param", http.MethodPost, "/tools/get_position_info", `{}`, http.StatusBadRequest},
		{"malformed", http.MethodPost, "/tools/get_team_legends", `{"team":`, http.StatusBadRequest},
		{"wrong method", http.MethodGet, "/tools/get_team_legends", ``, http.StatusMethodNotAllowed},
		{"unknown route", http.MethodGet, "/games", ``, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := testutil.Serve(router, tc.method, tc.path, strings.NewReader(tc.body))
			testutil.AssertStatus(t, rr, tc.status)
			var resp map[string]string
			testutil.DecodeJSON(t, rr, &resp)
			if resp["error"] == "" || resp["requestId"] == "" {
				t.Fatalf("expected error and requestId, got %+v", resp)
			}
		})
	}
}

func TestChatWithoutAssistant(t *testing.T) {
	router := newRouter(t, nil, nil)
	rr := testutil.ServeJSON(t, router, http.MethodPost, "/chat", ChatRequest{Message: "hi"})
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	rr = testutil.Serve(router, http.MethodGet, "/chat/greeting", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestChatStartsAndContinuesSession(t *testing.T) {
	asst := &stubAssistant{reply: "echo:"}
	router := newRouter(t, asst, nil)

	rr := testutil.ServeJSON(t, router, http.MethodPost, "/chat", ChatRequest{Message: "hello"})
	testutil.AssertStatus(t, rr, http.StatusOK)
	var first ChatResponse
	testutil.DecodeJSON(t, rr, &first)
	if first.SessionID == "" || first.Reply != "echo: hello" {
		t.Fatalf("unexpected first response %+v", first)
	}

	rr = testutil.ServeJSON(t, router, http.MethodPost, "/chat", ChatRequest{SessionID: first.SessionID, Message: "again"})
	testutil.AssertStatus(t, rr, http.StatusOK)
	var second ChatResponse
	testutil.DecodeJSON(t, rr, &second)
	if second.SessionID != first.SessionID {
		t.Fatalf("expected session to continue, got %s vs %s", second.SessionID, first.SessionID)
	}
	if len(asst.sessions) != 2 || asst.sessions[0] != asst.sessions[1] {
		t.Fatalf("expected both turns on one session, got %v", asst.sessions)
	}
}

func TestChatLogsSessionStartOnce(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	reg, err := tools.NewNBARegistry(knowledge.New(nil), nil, nil)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	r := mux.NewRouter()
	NewHandler(reg, &stubAssistant{reply: "ok"}, nil, logger, nil).Register(r)

	rr := testutil.ServeJSON(t, r, http.MethodPost, "/chat", ChatRequest{SessionID: "fan-42", Message: "hi"})
	testutil.AssertStatus(t, rr, http.StatusOK)
	rr = testutil.ServeJSON(t, r, http.MethodPost, "/chat", ChatRequest{SessionID: "fan-42", Message: "again"})
	testutil.AssertStatus(t, rr, http.StatusOK)

	out := buf.String()
	if strings.Count(out, "chat session started") != 1 || !strings.Contains(out, "session_id=fan-42") {
		t.Fatalf("expected one session start entry, got %q", out)
	}
}

func TestChatRejectsBadRequests(t *testing.T) {
	router := newRouter(t, &stubAssistant{}, nil)
	cases := map[string]string{
		"malformed":     `{"message":`,
		"empty message": `{"message":"  "}`,
		"unknown field": `{"message":"hi","foo":1}`,
		"bad session":   `{"message":"hi","sessionId":"bad id"}`,
	}
	for name, body := range cases {
		rr := testutil.Serve(router, http.MethodPost, "/chat", strings.NewReader(body))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d (%s)", name, rr.Code, rr.Body.String())
		}
	}
}

func TestChatProviderFailure(t *testing.T) {
	router := newRouter(t, &stubAssistant{err: errors.New("upstream down")}, nil)
	rr := testutil.ServeJSON(t, router, http.MethodPost, "/chat", ChatRequest{Message: "hi"})
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
	if strings.Contains(rr.Body.String(), "upstream down") {
		t.Fatalf("provider error should not leak to clients: %s", rr.Body.String())
	}
}

func TestGreeting(t *testing.T) {
	rr := testutil.Serve(newRouter(t, &stubAssistant{}, nil), http.MethodGet, "/chat/greeting", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["greeting"] != "Hey there!" {
		t.Fatalf("unexpected greeting %+v", resp)
	}
}
