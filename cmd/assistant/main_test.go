package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-stats-agent/internal/assistant"
)

type scriptedReplier struct {
	err      error
	sessions map[string]int
}

func (s *scriptedReplier) Greeting() string { return "Ask me about the NBA." }

func (s *scriptedReplier) Reply(ctx context.Context, session *assistant.Session, text string) (string, error) {
	if s.sessions == nil {
		s.sessions = map[string]int{}
	}
	s.sessions[session.ID]++
	if s.err != nil {
		return "", s.err
	}
	return "you said " + text, nil
}

func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestChatLoop(t *testing.T) {
	r := &scriptedReplier{}
	var out bytes.Buffer

	err := chat(context.Background(), r, strings.NewReader("celtics\n\nlakers\nexit\nignored\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Ask me about the NBA.", "you said celtics", "you said lakers"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output %q", want, got)
		}
	}
	if strings.Contains(got, "ignored") {
		t.Fatalf("expected loop to stop at exit")
	}
	if len(r.sessions) != 1 {
		t.Fatalf("expected one session for the whole chat, got %d", len(r.sessions))
	}
}

func TestChatLoopReportsErrorsAndContinues(t *testing.T) {
	r := &scriptedReplier{err: errors.New("provider down")}
	var out bytes.Buffer

	if err := chat(context.Background(), r, strings.NewReader("hi\n"), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "(no answer: provider down)") {
		t.Fatalf("expected error line, got %q", out.String())
	}
}

func TestChatLoopStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &scriptedReplier{err: context.Canceled}

	err := chat(ctx, r, strings.NewReader("hi\n"), &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}
