package flows

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/dishalabs/disha-backend/internal/logger"
)

// DefaultModel is the Gemini model all flows run against unless overridden.
const DefaultModel = "gemini-2.5-flash"

// Turn is one prior message handed to a conversational generation call.
type Turn struct {
	Role    string // "user" or "assistant"
	Content string
}

// backend is the raw generative boundary. Exactly one network round trip
// per call; no retries at this layer.
type backend interface {
	GenerateJSON(ctx context.Context, system, user string, schema *genai.Schema) (string, error)
	GenerateText(ctx context.Context, system string, turns []Turn) (string, error)
}

// Client exposes the typed flows. Safe for concurrent use.
type Client struct {
	backend backend
	log     *logger.Logger
}

// NewClient dials the Gemini API. model may be empty for DefaultModel.
func NewClient(ctx context.Context, apiKey, model string, log *logger.Logger) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Client{
		backend: &geminiBackend{client: gc, model: model},
		log:     log,
	}, nil
}

// newClientWithBackend is the test seam.
func newClientWithBackend(b backend, log *logger.Logger) *Client {
	return &Client{backend: b, log: log}
}

type geminiBackend struct {
	client *genai.Client
	model  string
}

func (b *geminiBackend) GenerateJSON(ctx context.Context, system, user string, schema *genai.Schema) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
		Temperature:      genai.Ptr(float32(0.6)),
	}
	if system != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: system}}}
	}
	resp, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(user), cfg)
	if err != nil {
		return "", err
	}
	out := resp.Text()
	if out == "" {
		return "", fmt.Errorf("empty model response")
	}
	return out, nil
}

func (b *geminiBackend) GenerateText(ctx context.Context, system string, turns []Turn) (string, error) {
	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		role := "user"
		if t.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: t.Content}},
		})
	}
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.7)),
	}
	if system != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: system}}}
	}
	resp, err := b.client.Models.GenerateContent(ctx, b.model, contents, cfg)
	if err != nil {
		return "", err
	}
	out := resp.Text()
	if out == "" {
		return "", fmt.Errorf("empty model response")
	}
	return out, nil
}

// Reply runs one conversational turn. Used by the chat session assembler.
func (c *Client) Reply(ctx context.Context, system string, turns []Turn) (string, error) {
	out, err := c.backend.GenerateText(ctx, system, turns)
	if err != nil {
		return "", generationErr("chat", err)
	}
	return out, nil
}
