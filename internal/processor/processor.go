package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	fyneapp "fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"codeberg.org/snonux/lingopad/internal/anki"
	"codeberg.org/snonux/lingopad/internal/app"
	"codeberg.org/snonux/lingopad/internal/batch"
	"codeberg.org/snonux/lingopad/internal/cli"
	"codeberg.org/snonux/lingopad/internal/gui"
	"codeberg.org/snonux/lingopad/internal/languages"
	"codeberg.org/snonux/lingopad/internal/logging"
	"codeberg.org/snonux/lingopad/internal/models"
	"codeberg.org/snonux/lingopad/internal/session"
	"codeberg.org/snonux/lingopad/internal/translation"
)

// AppID identifies the application to the desktop environment
const AppID = "org.codeberg.snonux.lingopad"

// Processor runs the lingopad commands
type Processor struct {
	flags  *cli.Flags
	logger *zap.Logger
	out    io.Writer
	errOut io.Writer
}

// NewProcessor creates a new processor
func NewProcessor(flags *cli.Flags, logger *zap.Logger) *Processor {
	return &Processor{
		flags:  flags,
		logger: logging.OrNop(logger),
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

func (p *Processor) translationConfig() translation.Config {
	return translation.Config{
		Backend:       p.flags.Backend,
		Model:         p.flags.Model,
		OpenAIKey:     cli.GetOpenAIKey(),
		OpenAIBaseURL: cli.GetOpenAIBaseURL(),
		GeminiKey:     cli.GetGeminiKey(),
	}
}

func (p *Processor) adapterOptions() translation.Options {
	return translation.Options{
		MaxInputRunes:   p.flags.MaxInput,
		RateLimit:       p.flags.Rate,
		BreakerFailures: p.flags.BreakerFailures,
		DisableCache:    p.flags.NoCache,
		Logger:          p.logger,
	}
}

// NewAdapter builds the translation adapter for the configured backend
func (p *Processor) NewAdapter() (*translation.Adapter, error) {
	loader, err := translation.NewLoader(p.translationConfig())
	if err != nil {
		return nil, err
	}
	return translation.NewAdapter(loader, p.adapterOptions()), nil
}

// Translate translates the given text, or every line of the batch file,
// and prints the results
func (p *Processor) Translate(ctx context.Context, text string) error {
	src, err := languages.Resolve(p.flags.From)
	if err != nil {
		return fmt.Errorf("invalid source language: %w", err)
	}
	tgt, err := languages.Resolve(p.flags.To)
	if err != nil {
		return fmt.Errorf("invalid target language: %w", err)
	}

	adapter, err := p.NewAdapter()
	if err != nil {
		return err
	}

	if p.flags.Batch != "" {
		return p.translateBatch(ctx, adapter, src, tgt)
	}

	if strings.TrimSpace(text) == "" {
		return errors.New("please enter text to translate")
	}

	result := adapter.Translate(ctx, text, src.Code, tgt.Code)
	if loadErr := adapter.LoadError(); loadErr != nil {
		return fmt.Errorf("failed to load model: %w", loadErr)
	}
	if result == translation.FailureMessage {
		return errors.New(result)
	}

	fmt.Fprintln(p.out, result)
	return nil
}

func (p *Processor) translateBatch(ctx context.Context, adapter *translation.Adapter, src, tgt languages.Language) error {
	entries, err := batch.ReadBatchFile(p.flags.Batch)
	if err != nil {
		return err
	}

	if err := adapter.Load(ctx); err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}

	start := time.Now()
	errorCount := 0
	for i, entry := range entries {
		result := adapter.Translate(ctx, entry.Text, src.Code, tgt.Code)
		if result == translation.FailureMessage {
			fmt.Fprintf(p.errOut, "Error translating line %d '%s'\n", entry.Line, entry.Text)
			errorCount++
			continue
		}
		fmt.Fprintf(p.out, "%d/%d: %s = %s\n", i+1, len(entries), entry.Text, result)
	}

	fmt.Fprintf(p.out, "\n=== Batch Translation Summary ===\n")
	fmt.Fprintf(p.out, "Total lines: %d\n", len(entries))
	fmt.Fprintf(p.out, "Translated: %d\n", len(entries)-errorCount)
	if errorCount > 0 {
		fmt.Fprintf(p.out, "Errors: %d\n", errorCount)
	}
	p.logger.Info("batch translation finished",
		zap.Int("lines", len(entries)),
		zap.Int("errors", errorCount),
		zap.Duration("elapsed", time.Since(start)),
	)

	if errorCount > 0 {
		return fmt.Errorf("%d of %d lines failed to translate", errorCount, len(entries))
	}
	return nil
}

// ListLanguages prints the supported languages with their codes
func (p *Processor) ListLanguages() error {
	for _, l := range languages.All() {
		fmt.Fprintf(p.out, "%-22s %s  %s\n", l.Name, l.Code, languages.Autonym(l.Code))
	}
	return nil
}

// ListModels prints the OpenAI chat models usable for translation
func (p *Processor) ListModels(ctx context.Context) error {
	lister := models.NewLister(cli.GetOpenAIKey(), cli.GetOpenAIBaseURL())
	return lister.PrintModels(ctx, p.out)
}

// deckExporter returns an exporter writing format; an empty format is
// taken from the file extension
func (p *Processor) deckExporter(format string) *anki.VocabularyExporter {
	return &anki.VocabularyExporter{
		DeckName: p.flags.DeckName,
		Format:   format,
		Logger:   p.logger,
	}
}

// ExportDeck writes the word game vocabulary to the configured output file
func (p *Processor) ExportDeck() error {
	if err := p.deckExporter(p.flags.Format).ExportDeck(p.flags.Output); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Anki deck created: %s\n", p.flags.Output)
	return nil
}

// NewController assembles the page controller used by the GUI. A
// misconfigured backend does not stop the app; the failure surfaces on
// the first translation.
func (p *Processor) NewController() *app.Controller {
	adapter, err := p.NewAdapter()
	if err != nil {
		p.logger.Warn("translation backend unavailable", zap.Error(err))
		adapter = translation.NewAdapter(func(context.Context) (translation.Model, error) {
			return nil, err
		}, p.adapterOptions())
	}

	sess := session.New(nil, p.logger)
	return app.NewController(sess, adapter, p.deckExporter(""), p.logger)
}

// RunGUIMode launches the GUI application
func (p *Processor) RunGUIMode() error {
	fyneApp := fyneapp.NewWithID(AppID)
	application := gui.New(fyneApp, p.NewController(), &gui.Config{
		DeckPath:      p.flags.Output,
		MaxInputRunes: p.flags.MaxInput,
		Logger:        p.logger,
	})
	application.Run()
	return nil
}
