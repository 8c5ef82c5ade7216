package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/lingopad/internal/app"
	"codeberg.org/snonux/lingopad/internal/cli"
	"codeberg.org/snonux/lingopad/internal/testutil"
	"codeberg.org/snonux/lingopad/internal/translation"
)

// fakeOpenAI answers model lookups for gpt-4o-mini and echoes every chat
// request as "<target>:<text>"
func fakeOpenAI(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/v1/models/gpt-4o-mini":
			json.NewEncoder(w).Encode(map[string]interface{}{"id": "gpt-4o-mini", "object": "model"})

		case r.URL.Path == "/v1/models":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"object": "list",
				"data": []map[string]interface{}{
					{"id": "gpt-4o-mini", "object": "model"},
					{"id": "tts-1", "object": "model"},
				},
			})

		case r.URL.Path == "/v1/chat/completions":
			var req struct {
				Messages []struct {
					Content string `json:"content"`
				} `json:"messages"`
			}
			json.NewDecoder(r.Body).Decode(&req)

			text := req.Messages[len(req.Messages)-1].Content
			if text == "fail" {
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"error": map[string]string{"message": "boom", "type": "server_error"},
				})
				return
			}
			target := "?"
			if strings.Contains(req.Messages[0].Content, "to German (de)") {
				target = "de"
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"id":     "chatcmpl-1",
				"object": "chat.completion",
				"choices": []map[string]interface{}{
					{
						"index":         0,
						"message":       map[string]string{"role": "assistant", "content": target + ":" + text},
						"finish_reason": "stop",
					},
				},
			})

		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]string{"message": "not found", "type": "invalid_request_error"},
			})
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestProcessor(t *testing.T, flags *cli.Flags) (*Processor, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	srv := fakeOpenAI(t)
	t.Setenv("OPENAI_API_KEY", "test-key")
	viper.Set("translation.openai_base_url", srv.URL+"/v1")

	var out, errOut bytes.Buffer
	p := NewProcessor(flags, testutil.NewTestLogger())
	p.out = &out
	p.errOut = &errOut
	return p, &out, &errOut
}

func TestNewProcessor(t *testing.T) {
	flags := cli.NewFlags()
	p := NewProcessor(flags, nil)

	require.NotNil(t, p)
	assert.Same(t, flags, p.flags)
	assert.NotNil(t, p.logger)
	assert.Equal(t, os.Stdout, p.out)
}

func TestTranslate(t *testing.T) {
	flags := cli.NewFlags()
	flags.To = "German"
	p, out, _ := newTestProcessor(t, flags)

	require.NoError(t, p.Translate(context.Background(), "Good day"))
	assert.Equal(t, "de:Good day\n", out.String())
}

func TestTranslate_Validation(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		text string
	}{
		{"unknown source", "Klingon", "fr", "hi"},
		{"unknown target", "en", "Elvish", "hi"},
		{"blank text", "en", "fr", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := cli.NewFlags()
			flags.From, flags.To = tt.from, tt.to
			p, out, _ := newTestProcessor(t, flags)

			assert.Error(t, p.Translate(context.Background(), tt.text))
			assert.Empty(t, out.String())
		})
	}
}

func TestTranslate_UnknownModel(t *testing.T) {
	flags := cli.NewFlags()
	flags.Model = "no-such-model"
	p, _, _ := newTestProcessor(t, flags)

	err := p.Translate(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load model")
}

func TestTranslate_UnknownBackend(t *testing.T) {
	flags := cli.NewFlags()
	flags.Backend = "marian"
	p, _, _ := newTestProcessor(t, flags)

	err := p.Translate(context.Background(), "hello")
	assert.True(t, errors.Is(err, translation.ErrUnknownBackend))
}

func TestTranslate_Batch(t *testing.T) {
	dir := t.TempDir()
	batchFile := filepath.Join(dir, "lines.txt")
	require.NoError(t, os.WriteFile(batchFile, []byte("# greetings\nhello\n\nfail\nthank you\n"), 0644))

	flags := cli.NewFlags()
	flags.To = "de"
	flags.Batch = batchFile
	p, out, errOut := newTestProcessor(t, flags)

	err := p.Translate(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 lines failed")

	assert.Contains(t, out.String(), "1/3: hello = de:hello")
	assert.Contains(t, out.String(), "3/3: thank you = de:thank you")
	assert.Contains(t, out.String(), "Translated: 2")
	assert.Contains(t, errOut.String(), "line 4 'fail'")
}

func TestListLanguages(t *testing.T) {
	p, out, _ := newTestProcessor(t, cli.NewFlags())

	require.NoError(t, p.ListLanguages())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 23)
	assert.True(t, strings.HasPrefix(lines[0], "English"))
	assert.Contains(t, lines[1], " fr ")
}

func TestListModels(t *testing.T) {
	p, out, _ := newTestProcessor(t, cli.NewFlags())

	require.NoError(t, p.ListModels(context.Background()))
	assert.Equal(t, "Chat/Translation Models:\n  gpt-4o-mini\n", out.String())
}

func TestExportDeck(t *testing.T) {
	flags := cli.NewFlags()
	flags.Output = filepath.Join(t.TempDir(), "vocab.csv")
	flags.Format = "csv"
	p, out, _ := newTestProcessor(t, flags)

	require.NoError(t, p.ExportDeck())
	testutil.AssertFileExists(t, flags.Output)
	assert.Contains(t, out.String(), "Anki deck created")
}

func TestNewController_EndToEnd(t *testing.T) {
	flags := cli.NewFlags()
	flags.To = "German"
	p, _, _ := newTestProcessor(t, flags)

	c := p.NewController()
	ctx := context.Background()

	view := c.Dispatch(ctx, app.Login{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org"})
	require.Equal(t, app.PageMain, view.Page)

	view = c.Dispatch(ctx, app.Translate{Text: "Good night", Source: "English", Target: "German"})
	assert.Equal(t, "de:Good night", view.Translation)
	assert.False(t, view.HasLevel(app.LevelError))
}

func TestNewController_BadBackendIsFailSoft(t *testing.T) {
	flags := cli.NewFlags()
	flags.Backend = "marian"
	p, _, _ := newTestProcessor(t, flags)

	c := p.NewController()
	ctx := context.Background()
	c.Dispatch(ctx, app.Login{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org"})

	view := c.Dispatch(ctx, app.Translate{Text: "hello", Source: "English", Target: "French"})
	assert.Equal(t, translation.FailureMessage, view.Translation)
	require.NotEmpty(t, view.Messages)
	assert.True(t, strings.HasPrefix(view.Messages[0].Text, "Failed to load model: "))
}
