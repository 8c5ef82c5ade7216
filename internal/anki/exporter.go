package anki

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"codeberg.org/snonux/lingopad/internal/archive"
	"codeberg.org/snonux/lingopad/internal/game"
	"codeberg.org/snonux/lingopad/internal/logging"
)

// Supported export formats
const (
	FormatAPKG = "apkg"
	FormatCSV  = "csv"
)

// DefaultDeckName is used when no deck name is configured
const DefaultDeckName = "lingopad English-French"

// VocabularyFields names the note fields of the game vocabulary
var VocabularyFields = Fields{Front: "English", Back: "French"}

// VocabularyExporter writes the word game vocabulary as an Anki deck
type VocabularyExporter struct {
	DeckName string
	Format   string // FormatAPKG or FormatCSV
	Logger   *zap.Logger
}

// VocabularyCards converts the word game vocabulary into cards
func VocabularyCards() []Card {
	pairs := game.Vocabulary()
	cards := make([]Card, 0, len(pairs))
	for _, p := range pairs {
		cards = append(cards, Card{Front: p.Word, Back: p.Translation})
	}
	return cards
}

// CheckFormat reports whether format names a supported deck format
func CheckFormat(format string) error {
	switch strings.ToLower(format) {
	case FormatAPKG, FormatCSV:
		return nil
	}
	return fmt.Errorf("unknown deck format %q (want %s or %s)", format, FormatAPKG, FormatCSV)
}

// ExportDeck writes the deck to path. The deck is generated next to path
// first; only then is an existing file at path archived and replaced.
func (e *VocabularyExporter) ExportDeck(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("no output path given")
	}

	format := e.format(path)
	if err := CheckFormat(format); err != nil {
		return err
	}
	deckName := e.DeckName
	if deckName == "" {
		deckName = DefaultDeckName
	}
	logger := logging.OrNop(e.Logger)

	tmp, err := os.CreateTemp(filepath.Dir(path), ".lingopad-deck-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("failed to create temporary deck file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	gen := NewGenerator(&GeneratorOptions{
		OutputPath:     tmpPath,
		IncludeHeaders: true,
		Fields:         VocabularyFields,
	})
	for _, card := range VocabularyCards() {
		gen.AddCard(card)
	}

	if format == FormatCSV {
		err = gen.GenerateCSV()
	} else {
		err = gen.GenerateAPKG(tmpPath, deckName)
	}
	if err != nil {
		return fmt.Errorf("failed to export deck: %w", err)
	}

	archived, err := archive.ArchiveFile(path)
	if err != nil {
		return err
	}
	if archived != "" {
		logger.Info("archived previous deck", zap.String("path", archived))
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move deck into place: %w", err)
	}

	logger.Info("exported deck",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("cards", len(gen.GetCards())),
	)
	return nil
}

// format picks the configured format, or guesses it from the file extension
func (e *VocabularyExporter) format(path string) string {
	if e.Format != "" {
		return strings.ToLower(e.Format)
	}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatAPKG
}
