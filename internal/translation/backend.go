package translation

import (
	"fmt"

	"codeberg.org/snonux/lingopad/internal/languages"
)

// Supported backends
const (
	BackendOpenAI = "openai"
	BackendGemini = "gemini"
)

// Config selects the hosted model used for translation
type Config struct {
	Backend string // "openai" or "gemini"
	Model   string // Model identifier; empty selects the backend default

	OpenAIKey     string
	OpenAIBaseURL string // Optional API endpoint override
	GeminiKey     string
}

// DefaultModel returns the model identifier used when none is configured
func DefaultModel(backend string) string {
	switch backend {
	case BackendGemini:
		return "gemini-2.0-flash"
	default:
		return "gpt-4o-mini"
	}
}

// NewLoader returns the LoadFunc for the configured backend
func NewLoader(config Config) (LoadFunc, error) {
	model := config.Model
	if model == "" {
		model = DefaultModel(config.Backend)
	}

	switch config.Backend {
	case BackendOpenAI, "":
		return NewOpenAILoader(config.OpenAIKey, model, config.OpenAIBaseURL), nil
	case BackendGemini:
		return NewGeminiLoader(config.GeminiKey, model), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, config.Backend)
	}
}

// systemPrompt pins source and target language for chat-style models
func systemPrompt(req Request) string {
	return fmt.Sprintf(
		"You are a machine translation model. Translate the user's text from %s (%s) to %s (%s). "+
			"Respond with only the translation in %s, nothing else.",
		languages.NameFor(req.Source), req.Source,
		languages.NameFor(req.Target), req.Target,
		languages.NameFor(req.Target),
	)
}
