package testutil

import (
	"context"
	"errors"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// StubChatProvider replays scripted completion responses. Errors[i], when set, is
// returned for call i instead of Responses[i].
type StubChatProvider struct {
	Responses []openai.ChatCompletionResponse
	Errors    []error

	mu       sync.Mutex
	requests []openai.ChatCompletionRequest
}

func (s *StubChatProvider) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.mu.Lock()
	idx := len(s.requests)
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return openai.ChatCompletionResponse{}, err
	}
	if idx < len(s.Errors) && s.Errors[idx] != nil {
		return openai.ChatCompletionResponse{}, s.Errors[idx]
	}
	if idx < len(s.Responses) {
		return s.Responses[idx], nil
	}
	return openai.ChatCompletionResponse{}, errors.New("no scripted response")
}

// Calls returns how many completions were requested.
func (s *StubChatProvider) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Request returns the i-th request received.
func (s *StubChatProvider) Request(i int) openai.ChatCompletionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[i]
}

// TextResponse is a completion whose assistant message is plain content.
func TextResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: content,
			},
			FinishReason: openai.FinishReasonStop,
		}},
	}
}

// ToolCallResponse is a completion requesting one function call per entry of calls,
// given as id, name, arguments triples.
func ToolCallResponse(calls ...[3]string) openai.ChatCompletionResponse {
	toolCalls := make([]openai.ToolCall, 0, len(calls))
	for _, c := range calls {
		toolCalls = append(toolCalls, openai.ToolCall{
			ID:   c[0],
			Type: openai.ToolTypeFunction,
			Function: openai.FunctionCall{
				Name:      c[1],
				Arguments: c[2],
			},
		})
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{
				Role:      openai.ChatMessageRoleAssistant,
				ToolCalls: toolCalls,
			},
			FinishReason: openai.FinishReasonToolCalls,
		}},
	}
}
