package translation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"codeberg.org/snonux/lingopad/internal/languages"
	"codeberg.org/snonux/lingopad/internal/logging"
)

// FailureMessage is returned by Adapter.Translate whenever no translation
// can be produced.
const FailureMessage = "Translation failed. Please check the model or input."

// DefaultMaxInputRunes bounds the text handed to the model
const DefaultMaxInputRunes = 1024

var (
	ErrNoAPIKey       = errors.New("API key not found")
	ErrUnknownBackend = errors.New("unknown translation backend")
	ErrEmptyResponse  = errors.New("no translation returned")
)

// Request is a single translation call against a loaded model
type Request struct {
	Text   string
	Source string // two-letter source code
	Target string // two-letter target code
}

// Model is a loaded translation model
type Model interface {
	// Translate returns the raw decoded model output for req
	Translate(ctx context.Context, req Request) (string, error)

	// Name returns the resolved model identifier
	Name() string
}

// LoadFunc resolves a model identifier and initializes the model
type LoadFunc func(ctx context.Context) (Model, error)

// Options tunes the adapter around the model
type Options struct {
	MaxInputRunes   int     // 0 means DefaultMaxInputRunes
	RateLimit       float64 // requests per second, 0 disables limiting
	BreakerFailures uint32  // consecutive failures before the breaker opens, 0 means 5
	BreakerTimeout  time.Duration
	DisableCache    bool
	Logger          *zap.Logger
}

// Adapter is the process-wide entry point for translations
type Adapter struct {
	load   LoadFunc
	opts   Options
	logger *zap.Logger

	once    sync.Once
	loaded  atomic.Bool // set once model and loadErr are final
	model   Model
	loadErr error

	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter
	cache   *TranslationCache
}

// NewAdapter creates an adapter; the model is not loaded until first use
func NewAdapter(load LoadFunc, opts Options) *Adapter {
	if opts.MaxInputRunes <= 0 {
		opts.MaxInputRunes = DefaultMaxInputRunes
	}
	if opts.BreakerFailures == 0 {
		opts.BreakerFailures = 5
	}
	if opts.BreakerTimeout <= 0 {
		opts.BreakerTimeout = 30 * time.Second
	}

	a := &Adapter{
		load:   load,
		opts:   opts,
		logger: logging.OrNop(opts.Logger).Named("translation"),
	}

	a.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "translation",
		Timeout: opts.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			a.logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	if opts.RateLimit > 0 {
		a.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}
	if !opts.DisableCache {
		a.cache = NewTranslationCache()
	}

	return a
}

// Load initializes the model once. The outcome, success or failure, is
// memoized for the lifetime of the adapter.
func (a *Adapter) Load(ctx context.Context) error {
	a.once.Do(func() {
		defer a.loaded.Store(true)
		start := time.Now()
		a.logger.Info("loading translation model")

		if a.load == nil {
			a.loadErr = ErrUnknownBackend
		} else {
			a.model, a.loadErr = a.load(ctx)
		}
		if a.loadErr == nil && a.model == nil {
			a.loadErr = errors.New("loader returned no model")
		}

		if a.loadErr != nil {
			a.logger.Error("failed to load translation model",
				zap.Duration("elapsed", time.Since(start)),
				zap.Error(a.loadErr),
			)
			return
		}
		a.logger.Info("translation model loaded",
			zap.String("model", a.model.Name()),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
	return a.loadErr
}

// LoadError returns the memoized load error, or nil if the model loaded
// or no load has finished yet. It is safe to call while another goroutine
// is loading.
func (a *Adapter) LoadError() error {
	if !a.loaded.Load() {
		return nil
	}
	return a.loadErr
}

// Translate translates text from src to tgt. It never fails: any load,
// validation or inference problem yields FailureMessage.
func (a *Adapter) Translate(ctx context.Context, text, src, tgt string) string {
	if err := a.Load(ctx); err != nil {
		return FailureMessage
	}

	if strings.TrimSpace(text) == "" {
		a.logger.Warn("refusing to translate empty text")
		return FailureMessage
	}
	if !languages.IsSupported(src) || !languages.IsSupported(tgt) {
		a.logger.Warn("unsupported language pair", zap.String("src", src), zap.String("tgt", tgt))
		return FailureMessage
	}

	req := Request{
		Text:   Truncate(text, a.opts.MaxInputRunes),
		Source: src,
		Target: tgt,
	}

	if a.cache != nil {
		if cached, ok := a.cache.Get(req); ok {
			a.logger.Debug("translation cache hit", zap.String("src", src), zap.String("tgt", tgt))
			return cached
		}
	}

	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			a.logger.Warn("rate limiter aborted translation", zap.Error(err))
			return FailureMessage
		}
	}

	a.logger.Info("translating",
		zap.String("src", src),
		zap.String("tgt", tgt),
		zap.Int("runes", len([]rune(req.Text))),
	)

	out, err := a.breaker.Execute(func() (interface{}, error) {
		raw, err := a.model.Translate(ctx, req)
		if err != nil {
			return nil, err
		}
		cleaned := StripSpecialTokens(raw)
		if cleaned == "" {
			return nil, ErrEmptyResponse
		}
		return cleaned, nil
	})
	if err != nil {
		a.logger.Error("translation failed", zap.Error(err))
		return FailureMessage
	}

	translated := out.(string)
	if a.cache != nil {
		a.cache.Add(req, translated)
	}
	return translated
}
