package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

// ErrParseFailure marks a structural parse failure: the model returned output
// that could not be parsed as JSON even after the repair pass. Parse failures
// are not retried.
var ErrParseFailure = errors.New("failed to parse structured response")

const (
	// FormatText returns the model output untouched.
	FormatText = "text"
	// FormatStructured strips wrapping code-fence markers before returning.
	FormatStructured = "structured"

	defaultMaxTokens = 4096

	maxAttempts      = 3
	baseRetryDelay   = 2 * time.Second
	maxRetryDelay    = 10 * time.Second
	jsonOnlySuffix   = "\n\nIMPORTANT: Respond ONLY with valid JSON. No markdown, no explanations, just pure JSON."
	defaultSystemMsg = "You are a helpful AI assistant."
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionService is the single point of contact with the hosted language
// model. It owns retry, timeout, and malformed-output recovery so the stages
// above it never deal with transport concerns.
type CompletionService interface {
	Complete(ctx context.Context, prompt, system string, maxTokens int32, temperature float32, format string) (string, error)
	CompleteJSON(ctx context.Context, prompt, system string, maxTokens int32, temperature float32, out any) error
	Chat(ctx context.Context, messages []ChatMessage, system string, maxTokens int32, temperature float32) (string, error)
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type geminiCompletionService struct {
	client     *genai.Client
	modelName  string
	embedModel string
}

func NewCompletionService(apiKey string) (CompletionService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiCompletionService{
		client:     client,
		modelName:  "gemini-2.5-flash",
		embedModel: "text-embedding-004",
	}, nil
}

// Complete implements CompletionService.
func (g *geminiCompletionService) Complete(ctx context.Context, prompt, system string, maxTokens int32, temperature float32, format string) (string, error) {
	text, err := g.generateWithRetry(ctx, []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, system, maxTokens, temperature)
	if err != nil {
		return "", err
	}

	if format == FormatStructured {
		return ExtractJSON(text), nil
	}
	return text, nil
}

// CompleteJSON implements CompletionService. It appends a strict JSON-only
// instruction to the system prompt, then parses the response into out. A
// parse failure triggers one repair pass; if that also fails the error wraps
// ErrParseFailure and is not retried here.
func (g *geminiCompletionService) CompleteJSON(ctx context.Context, prompt, system string, maxTokens int32, temperature float32, out any) error {
	if system == "" {
		system = defaultSystemMsg
	}
	system += jsonOnlySuffix

	text, err := g.generateWithRetry(ctx, []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, system, maxTokens, temperature)
	if err != nil {
		return err
	}

	return ParseJSON(text, out)
}

// Chat implements CompletionService.
func (g *geminiCompletionService) Chat(ctx context.Context, messages []ChatMessage, system string, maxTokens int32, temperature float32) (string, error) {
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		var role genai.Role = genai.RoleUser
		if m.Role == "assistant" || m.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}

	return g.generateWithRetry(ctx, contents, system, maxTokens, temperature)
}

// GenerateEmbedding implements CompletionService.
func (g *geminiCompletionService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	// Truncate text if too long for the embedding model
	if len(text) > 40000 {
		text = text[:40000]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// generateWithRetry retries transient backend errors up to maxAttempts with
// exponential backoff (2s base, 10s cap) before surfacing a hard failure.
func (g *geminiCompletionService) generateWithRetry(ctx context.Context, contents []*genai.Content, system string, maxTokens int32, temperature float32) (string, error) {
	var lastErr error
	delay := baseRetryDelay

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, err := g.generateOnce(ctx, contents, system, maxTokens, temperature)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if attempt < maxAttempts {
			log.Printf("⚠️ Completion attempt %d failed: %v. Retrying in %s...\n", attempt, err, delay)
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("context cancelled: %w", ctx.Err())
			case <-time.After(delay):
			}
			delay *= 2
			if delay > maxRetryDelay {
				delay = maxRetryDelay
			}
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", maxAttempts, lastErr)
}

func (g *geminiCompletionService) generateOnce(ctx context.Context, contents []*genai.Content, system string, maxTokens int32, temperature float32) (string, error) {
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	if system == "" {
		system = defaultSystemMsg
	}

	config := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		MaxOutputTokens:   maxTokens,
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

// ExtractJSON extracts the JSON payload from a model response that may wrap
// it in markdown code fences or surrounding prose.
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)

	if idx := strings.Index(text, "```json"); idx != -1 {
		start := idx + len("```json")
		if end := strings.Index(text[start:], "```"); end != -1 {
			return strings.TrimSpace(text[start : start+end])
		}
	}
	if idx := strings.Index(text, "```"); idx != -1 {
		start := idx + len("```")
		if end := strings.Index(text[start:], "```"); end != -1 {
			return strings.TrimSpace(text[start : start+end])
		}
	}

	// Fall back to the outermost object or array bounds
	startObj := strings.Index(text, "{")
	endObj := strings.LastIndex(text, "}")
	if startObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	}
	startArr := strings.Index(text, "[")
	endArr := strings.LastIndex(text, "]")
	if startArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}

// ParseJSON parses a model response into out, applying one bounded repair
// pass for common literal-spelling mismatches (single quotes, None, True,
// False) before giving up with ErrParseFailure.
func ParseJSON(text string, out any) error {
	content := ExtractJSON(text)

	firstErr := json.Unmarshal([]byte(content), out)
	if firstErr == nil {
		return nil
	}

	repaired := strings.ReplaceAll(content, "'", `"`)
	repaired = strings.ReplaceAll(repaired, "None", "null")
	repaired = strings.ReplaceAll(repaired, "True", "true")
	repaired = strings.ReplaceAll(repaired, "False", "false")

	if err := json.Unmarshal([]byte(repaired), out); err != nil {
		return fmt.Errorf("%w: %v", ErrParseFailure, firstErr)
	}
	return nil
}
