package translation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeOpenAI(t *testing.T, reply string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/models/gpt-4o-mini":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"id":       "gpt-4o-mini",
				"object":   "model",
				"created":  1721172741,
				"owned_by": "system",
			})

		case r.Method == http.MethodPost && r.URL.Path == "/v1/chat/completions":
			var req openai.ChatCompletionRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode request: %v", err)
			}
			if len(req.Messages) != 2 || !strings.Contains(req.Messages[0].Content, "to French (fr)") {
				t.Errorf("unexpected messages: %+v", req.Messages)
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"id":      "chatcmpl-1",
				"object":  "chat.completion",
				"created": 1721172741,
				"model":   req.Model,
				"choices": []map[string]interface{}{
					{
						"index":         0,
						"message":       map[string]string{"role": "assistant", "content": reply},
						"finish_reason": "stop",
					},
				},
			})

		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]string{
					"message": "The model does not exist",
					"type":    "invalid_request_error",
				},
			})
		}
	}))
}

func TestOpenAILoader_ResolvesAndTranslates(t *testing.T) {
	srv := newFakeOpenAI(t, "__fr__ Bonjour le monde")
	defer srv.Close()

	adapter := NewAdapter(NewOpenAILoader("test-key", "gpt-4o-mini", srv.URL+"/v1"), Options{})

	got := adapter.Translate(context.Background(), "Hello world", "en", "fr")

	assert.Equal(t, "Bonjour le monde", got)
	assert.NoError(t, adapter.LoadError())
}

func TestOpenAILoader_UnknownModel(t *testing.T) {
	srv := newFakeOpenAI(t, "unused")
	defer srv.Close()

	load := NewOpenAILoader("test-key", "no-such-model", srv.URL+"/v1")
	_, err := load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve model")

	adapter := NewAdapter(load, Options{})
	assert.Equal(t, FailureMessage, adapter.Translate(context.Background(), "Hello", "en", "fr"))
}

func TestOpenAILoader_NoAPIKey(t *testing.T) {
	_, err := NewOpenAILoader("", "gpt-4o-mini", "")(context.Background())

	require.Error(t, err)
	assert.Equal(t, "OpenAI API key not found", err.Error())
}

func TestOpenAI_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	adapter := NewAdapter(NewOpenAILoader(apiKey, DefaultModel(BackendOpenAI), ""), Options{})
	got := adapter.Translate(context.Background(), "Good morning", "en", "fr")

	if got == FailureMessage {
		t.Fatalf("translation failed: %v", adapter.LoadError())
	}
	t.Logf("Translation of 'Good morning': %s", got)
}
