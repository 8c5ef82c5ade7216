package translation

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

type openAIModel struct {
	client *openai.Client
	model  string
}

// NewOpenAILoader returns a loader that resolves model through the OpenAI
// models endpoint before any translation is attempted.
func NewOpenAILoader(apiKey, model, baseURL string) LoadFunc {
	return func(ctx context.Context) (Model, error) {
		if apiKey == "" {
			return nil, fmt.Errorf("OpenAI %w", ErrNoAPIKey)
		}

		config := openai.DefaultConfig(apiKey)
		if baseURL != "" {
			config.BaseURL = baseURL
		}
		client := openai.NewClientWithConfig(config)

		if _, err := client.GetModel(ctx, model); err != nil {
			return nil, fmt.Errorf("failed to resolve model %s: %w", model, err)
		}

		return &openAIModel{client: client, model: model}, nil
	}
}

// Translate asks the chat model for a translation of req.Text
func (m *openAIModel) Translate(ctx context.Context, req Request) (string, error) {
	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: m.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt(req),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Text,
			},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}

// Name returns the resolved model identifier
func (m *openAIModel) Name() string {
	return m.model
}
