// Package anki exports the game vocabulary as Anki decks, either as a
// plain CSV import file or as a self-contained .apkg package.
package anki

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Card represents a single Anki note with a front and a back side
type Card struct {
	Front string // Prompt side, e.g. the English word
	Back  string // Answer side, e.g. the French translation
	Notes string // Optional notes
}

// Fields names the note fields in exported decks
type Fields struct {
	Front string
	Back  string
}

// DefaultFields returns generic field names
func DefaultFields() Fields {
	return Fields{Front: "Front", Back: "Back"}
}

// GeneratorOptions configures the CSV export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
	Fields         Fields // Header names for the front and back columns
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		IncludeHeaders: true,
		Fields:         DefaultFields(),
	}
}

// Generator creates Anki-compatible CSV import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	if options.Fields == (Fields{}) {
		options.Fields = DefaultFields()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// GetCards returns the cards added so far
func (g *Generator) GetCards() []Card {
	return g.cards
}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV() error {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if g.options.IncludeHeaders {
		headers := []string{g.options.Fields.Front, g.options.Fields.Back, "Notes"}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		if err := writer.Write([]string{card.Front, card.Back, card.Notes}); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// GenerateAPKG creates a proper .apkg file for Anki import
func (g *Generator) GenerateAPKG(outputPath, deckName string) error {
	apkgGen := NewAPKGGenerator(deckName, g.options.Fields)
	for _, card := range g.cards {
		apkgGen.AddCard(card)
	}
	return apkgGen.GenerateAPKG(outputPath)
}
