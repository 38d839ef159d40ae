package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// scriptedResponse maps a prompt substring to a canned model reply.
type scriptedResponse struct {
	match   string
	payload string
	err     error
}

// fakeCompletion is a scripted CompletionService for tests. Each call picks
// the first scripted response whose match substring appears in the prompt.
type fakeCompletion struct {
	mu        sync.Mutex
	responses []scriptedResponse
	calls     []string
}

func newFakeCompletion(responses ...scriptedResponse) *fakeCompletion {
	return &fakeCompletion{responses: responses}
}

func (f *fakeCompletion) pick(prompt string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, prompt)
	f.mu.Unlock()

	for _, r := range f.responses {
		if strings.Contains(prompt, r.match) {
			return r.payload, r.err
		}
	}
	return "", fmt.Errorf("no scripted response for prompt")
}

func (f *fakeCompletion) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeCompletion) Complete(ctx context.Context, prompt, system string, maxTokens int32, temperature float32, format string) (string, error) {
	text, err := f.pick(prompt)
	if err != nil {
		return "", err
	}
	if format == FormatStructured {
		return ExtractJSON(text), nil
	}
	return text, nil
}

func (f *fakeCompletion) CompleteJSON(ctx context.Context, prompt, system string, maxTokens int32, temperature float32, out any) error {
	text, err := f.pick(prompt)
	if err != nil {
		return err
	}
	return ParseJSON(text, out)
}

func (f *fakeCompletion) Chat(ctx context.Context, messages []ChatMessage, system string, maxTokens int32, temperature float32) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages")
	}
	return f.pick(messages[len(messages)-1].Content)
}

func (f *fakeCompletion) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return []float32{0.1, 0.2, 0.3}, nil
}
