package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-stats-agent/internal/metrics"
	"github.com/preston-bernstein/nba-stats-agent/internal/testutil"
)

func echoTool() Tool {
	return Tool{
		Name:        "echo",
		Description: "echo a color",
		Params: []Param{{
			Name:        "color",
			Description: "a color",
			Enum:        []string{"red", "blue"},
		}},
		Handler: func(_ context.Context, args Args) Result {
			return Result{Text: "color=" + args["color"], Fallback: args["color"] == "blue"}
		},
	}
}

func TestRegisterRejectsInvalidTools(t *testing.T) {
	reg := NewRegistry(nil, nil)
	if err := reg.Register(Tool{Handler: echoTool().Handler}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := reg.Register(Tool{Name: "nohandler"}); err == nil {
		t.Fatalf("expected error for missing handler")
	}
	bad := echoTool()
	bad.Params = []Param{{Name: "color"}}
	if err := reg.Register(bad); err == nil {
		t.Fatalf("expected error for param without enum")
	}
	if err := reg.Register(echoTool()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.Register(echoTool()); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestAllSortedByName(t *testing.T) {
	reg := NewRegistry(nil, nil)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		tool := echoTool()
		tool.Name = name
		if err := reg.Register(tool); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	all := reg.All()
	if len(all) != 3 || all[0].Name != "alpha" || all[1].Name != "mid" || all[2].Name != "zeta" {
		t.Fatalf("unexpected order: %+v", all)
	}
	defs := reg.Definitions()
	if len(defs) != 3 || defs[0].Name != "alpha" {
		t.Fatalf("unexpected definitions: %+v", defs)
	}
}

func TestSchemaIsExplicit(t *testing.T) {
	schema := echoTool().Schema()
	if schema["type"] != "object" || schema["additionalProperties"] != false {
		t.Fatalf("unexpected schema envelope: %+v", schema)
	}
	required, _ := schema["required"].([]string)
	if len(required) != 1 || required[0] != "color" {
		t.Fatalf("unexpected required list: %+v", schema["required"])
	}
	props := schema["properties"].(map[string]any)
	color := props["color"].(map[string]any)
	enum := color["enum"].([]string)
	if color["type"] != "string" || len(enum) != 2 || enum[0] != "red" {
		t.Fatalf("unexpected property schema: %+v", color)
	}
}

func TestInvokeValidArguments(t *testing.T) {
	rec := metrics.NewRecorder()
	reg := NewRegistry(nil, rec)
	if err := reg.Register(echoTool()); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := reg.Invoke(context.Background(), "echo", []byte(`{"color":"red"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "color=red" {
		t.Fatalf("unexpected result %q", got)
	}
	if _, err := reg.Invoke(context.Background(), "echo", []byte(`{"color":"blue"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := rec.Tool("echo")
	if snap.Calls != 2 || snap.Fallbacks != 1 || snap.Rejected != 0 {
		t.Fatalf("unexpected tool metrics: %+v", snap)
	}
}

func TestInvokeUnknownTool(t *testing.T) {
	rec := metrics.NewRecorder()
	reg := NewRegistry(nil, rec)

	_, err := reg.Invoke(context.Background(), "missing", nil)
	if !errors.Is(err, ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", err)
	}
	if rec.Tool("missing").Rejected != 1 {
		t.Fatalf("expected rejection to be counted")
	}
}

func TestInvokeRejectsBadArguments(t *testing.T) {
	reg := NewRegistry(nil, nil)
	if err := reg.Register(echoTool()); err != nil {
		t.Fatalf("register: %v", err)
	}
	cases := map[string]string{
		"malformed":  `{"color":`,
		"not object": `["red"]`,
		"missing":    `{}`,
		"empty":      ``,
		"null":       `{"color":null}`,
		"not string": `{"color":7}`,
		"off enum":   `{"color":"green"}`,
		"extra":      `{"color":"red","shade":"dark"}`,
	}
	for name, payload := range cases {
		_, err := reg.Invoke(context.Background(), "echo", []byte(payload))
		if _, ok := AsArgumentError(err); !ok {
			t.Fatalf("%s: expected ArgumentError, got %v", name, err)
		}
	}
}

func TestArgumentErrorMessage(t *testing.T) {
	err := &ArgumentError{Tool: "echo", Param: "color", Value: "green", Reason: "is not an accepted value"}
	if !strings.Contains(err.Error(), `"green"`) || !strings.Contains(err.Error(), "echo") {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if _, ok := AsArgumentError(errors.New("plain")); ok {
		t.Fatalf("plain error should not unwrap")
	}
}

func TestRejectedCallIsLogged(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	reg := NewRegistry(logger, nil)
	if err := reg.Register(echoTool()); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _ = reg.Call(context.Background(), "echo", map[string]any{"color": "green"})

	out := buf.String()
	if !strings.Contains(out, "tool call rejected") || !strings.Contains(out, "tool=echo") {
		t.Fatalf("expected rejection log, got %q", out)
	}
}
