package assistant

import (
	"slices"
	"sync"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/preston-bernstein/nba-stats-agent/internal/prompts"
)

// Session is one conversation's message history, seeded with the system prompt.
// Turns within a session are serialized.
type Session struct {
	ID string

	turn     sync.Mutex
	mu       sync.Mutex
	messages []openai.ChatCompletionMessage
}

// NewSession starts a conversation with a fresh id.
func NewSession() *Session {
	return NewSessionWithID(uuid.NewString())
}

// NewSessionWithID starts a conversation under a caller-chosen id.
func NewSessionWithID(id string) *Session {
	return &Session{
		ID: id,
		messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleSystem,
			Content: prompts.SystemPrompt(),
		}},
	}
}

// Messages returns a copy of the history.
func (s *Session) Messages() []openai.ChatCompletionMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.messages)
}

func (s *Session) append(msgs ...openai.ChatCompletionMessage) {
	s.mu.Lock()
	s.messages = append(s.messages, msgs...)
	s.mu.Unlock()
}

// rollback drops messages added after mark so a failed turn leaves no dangling tool calls.
func (s *Session) rollback(mark int) {
	s.mu.Lock()
	if mark < len(s.messages) {
		s.messages = s.messages[:mark]
	}
	s.mu.Unlock()
}

func (s *Session) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}
