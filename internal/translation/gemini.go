package translation

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type geminiModel struct {
	client *genai.Client
	model  string
}

// NewGeminiLoader returns a loader backed by the Gemini API
func NewGeminiLoader(apiKey, model string) LoadFunc {
	return func(ctx context.Context) (Model, error) {
		if apiKey == "" {
			return nil, fmt.Errorf("Gemini %w", ErrNoAPIKey)
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}

		if _, err := client.Models.Get(ctx, model, nil); err != nil {
			return nil, fmt.Errorf("failed to resolve model %s: %w", model, err)
		}

		return &geminiModel{client: client, model: model}, nil
	}
}

// Translate generates the translation with the source and target pinned
// in the system instruction
func (m *geminiModel) Translate(ctx context.Context, req Request) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(req.Text), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt(req), genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.1),
	})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Name returns the resolved model identifier
func (m *geminiModel) Name() string {
	return m.model
}
