// Command assistant is a terminal chat with the NBA assistant, one line per turn.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/nba-stats-agent/internal/assistant"
	"github.com/preston-bernstein/nba-stats-agent/internal/config"
	"github.com/preston-bernstein/nba-stats-agent/internal/logging"
	"github.com/preston-bernstein/nba-stats-agent/internal/server"
)

const appVersion = "dev"

type replier interface {
	Greeting() string
	Reply(ctx context.Context, session *assistant.Session, text string) (string, error)
}

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "nba-stats-agent-cli",
		Version: appVersion,
		Output:  os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry, err := server.BuildRegistry(logger, nil)
	if err != nil {
		logging.Error(logger, "registry setup failed", err)
		os.Exit(1)
	}
	asst, err := server.NewAssistant(cfg.LLM, logger, nil, registry)
	if err != nil {
		logging.Error(logger, "assistant setup failed", err)
		os.Exit(1)
	}
	if asst == nil {
		fmt.Fprintln(os.Stderr, "OPENAI_API_KEY is required")
		os.Exit(2)
	}

	if err := chat(ctx, asst, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error(logger, "chat ended", err)
		os.Exit(1)
	}
}

// chat runs one session until the input ends or the user types exit.
func chat(ctx context.Context, r replier, in io.Reader, out io.Writer) error {
	session := assistant.NewSession()
	fmt.Fprintln(out, r.Greeting())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		reply, err := r.Reply(ctx, session, line)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(out, "(no answer: %v)\n", err)
			continue
		}
		fmt.Fprintln(out, reply)
	}
}
