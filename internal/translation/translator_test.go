package translation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	out   string
	err   error
	calls int
	last  Request
}

func (f *fakeModel) Translate(ctx context.Context, req Request) (string, error) {
	f.calls++
	f.last = req
	return f.out, f.err
}

func (f *fakeModel) Name() string { return "fake-model" }

func loaderFor(m Model, err error, loads *int) LoadFunc {
	return func(ctx context.Context) (Model, error) {
		*loads++
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

func TestTranslate_LoadFailureIsFailSoft(t *testing.T) {
	loads := 0
	loadErr := errors.New("model repository unreachable")
	adapter := NewAdapter(loaderFor(nil, loadErr, &loads), Options{})

	inputs := []struct{ text, src, tgt string }{
		{"Hello world", "en", "fr"},
		{"", "en", "fr"},
		{"Guten Tag", "de", "xx"},
		{"   ", "", ""},
	}

	for _, in := range inputs {
		got := adapter.Translate(context.Background(), in.text, in.src, in.tgt)
		assert.Equal(t, FailureMessage, got)
	}

	assert.Equal(t, 1, loads, "load must be attempted exactly once")
	assert.ErrorIs(t, adapter.LoadError(), loadErr)
}

func TestTranslate_LoaderReturnsNilModel(t *testing.T) {
	loads := 0
	adapter := NewAdapter(loaderFor(nil, nil, &loads), Options{})

	assert.Equal(t, FailureMessage, adapter.Translate(context.Background(), "hi", "en", "fr"))
	assert.Error(t, adapter.LoadError())
}

func TestTranslate_NilLoader(t *testing.T) {
	adapter := NewAdapter(nil, Options{})

	assert.Equal(t, FailureMessage, adapter.Translate(context.Background(), "hi", "en", "fr"))
	assert.ErrorIs(t, adapter.LoadError(), ErrUnknownBackend)
}

func TestLoadError_BeforeAndAfterLoad(t *testing.T) {
	loads := 0
	adapter := NewAdapter(loaderFor(&fakeModel{out: "x"}, nil, &loads), Options{})

	assert.NoError(t, adapter.LoadError())
	require.NoError(t, adapter.Load(context.Background()))
	require.NoError(t, adapter.Load(context.Background()))
	assert.Equal(t, 1, loads)
}

func TestLoadError_ConcurrentWithLoad(t *testing.T) {
	loadErr := errors.New("weights missing")
	started := make(chan struct{})
	release := make(chan struct{})
	adapter := NewAdapter(func(context.Context) (Model, error) {
		close(started)
		<-release
		return nil, loadErr
	}, Options{})

	done := make(chan string)
	go func() { done <- adapter.Translate(context.Background(), "hi", "en", "fr") }()

	<-started
	assert.NoError(t, adapter.LoadError(), "no error while the load is in flight")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = adapter.LoadError()
		}()
	}
	close(release)
	wg.Wait()

	assert.Equal(t, FailureMessage, <-done)
	assert.ErrorIs(t, adapter.LoadError(), loadErr)
}

func TestTranslate_Success(t *testing.T) {
	loads := 0
	model := &fakeModel{out: "__fr__ Bonjour le monde </s>"}
	adapter := NewAdapter(loaderFor(model, nil, &loads), Options{})

	got := adapter.Translate(context.Background(), "Hello world", "en", "fr")

	assert.Equal(t, "Bonjour le monde", got)
	assert.Equal(t, Request{Text: "Hello world", Source: "en", Target: "fr"}, model.last)
	assert.NoError(t, adapter.LoadError())
}

func TestTranslate_TruncatesInput(t *testing.T) {
	loads := 0
	model := &fakeModel{out: "ok"}
	adapter := NewAdapter(loaderFor(model, nil, &loads), Options{MaxInputRunes: 5})

	adapter.Translate(context.Background(), "ябълка и круша", "ru", "en")

	assert.Equal(t, "ябълк", model.last.Text)
}

func TestTranslate_Validation(t *testing.T) {
	tests := []struct {
		name, text, src, tgt string
	}{
		{"blank text", "  \n ", "en", "fr"},
		{"unknown source", "hello", "xx", "fr"},
		{"unknown target", "hello", "en", "French"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loads := 0
			model := &fakeModel{out: "bonjour"}
			adapter := NewAdapter(loaderFor(model, nil, &loads), Options{})

			assert.Equal(t, FailureMessage, adapter.Translate(context.Background(), tt.text, tt.src, tt.tgt))
			assert.Zero(t, model.calls)
		})
	}
}

func TestTranslate_CachesResults(t *testing.T) {
	loads := 0
	model := &fakeModel{out: "Hallo"}
	adapter := NewAdapter(loaderFor(model, nil, &loads), Options{})

	first := adapter.Translate(context.Background(), "Hello", "en", "de")
	second := adapter.Translate(context.Background(), "Hello", "en", "de")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, model.calls)

	adapter.Translate(context.Background(), "Hello", "en", "nl")
	assert.Equal(t, 2, model.calls)
}

func TestTranslate_CacheDisabled(t *testing.T) {
	loads := 0
	model := &fakeModel{out: "Hallo"}
	adapter := NewAdapter(loaderFor(model, nil, &loads), Options{DisableCache: true})

	adapter.Translate(context.Background(), "Hello", "en", "de")
	adapter.Translate(context.Background(), "Hello", "en", "de")

	assert.Equal(t, 2, model.calls)
}

func TestTranslate_InferenceErrorAndBreaker(t *testing.T) {
	loads := 0
	model := &fakeModel{err: errors.New("inference exploded")}
	adapter := NewAdapter(loaderFor(model, nil, &loads), Options{BreakerFailures: 2})

	for i := 0; i < 4; i++ {
		assert.Equal(t, FailureMessage, adapter.Translate(context.Background(), "Hello", "en", "fr"))
	}

	// The breaker opened after two consecutive failures
	assert.Equal(t, 2, model.calls)
	assert.NoError(t, adapter.LoadError(), "inference errors are not load errors")
}

func TestTranslate_EmptyOutputIsFailure(t *testing.T) {
	loads := 0
	model := &fakeModel{out: " </s> "}
	adapter := NewAdapter(loaderFor(model, nil, &loads), Options{})

	assert.Equal(t, FailureMessage, adapter.Translate(context.Background(), "Hello", "en", "fr"))
}

func TestTranslate_RateLimiterHonoursContext(t *testing.T) {
	loads := 0
	model := &fakeModel{out: "Hola"}
	adapter := NewAdapter(loaderFor(model, nil, &loads), Options{RateLimit: 1})
	require.NoError(t, adapter.Load(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, FailureMessage, adapter.Translate(ctx, "Hello", "en", "es"))
	assert.Zero(t, model.calls)

	assert.Equal(t, "Hola", adapter.Translate(context.Background(), "Hello", "en", "es"))
}

func TestSystemPrompt(t *testing.T) {
	prompt := systemPrompt(Request{Text: "x", Source: "en", Target: "zh"})

	assert.True(t, strings.Contains(prompt, "English (en)"))
	assert.True(t, strings.Contains(prompt, "Chinese (Simplified) (zh)"))
}
