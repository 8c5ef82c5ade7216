package cli

import (
	"testing"

	"codeberg.org/snonux/lingopad/internal/anki"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Backend", flags.Backend, "openai"},
		{"Model", flags.Model, ""},
		{"MaxInput", flags.MaxInput, 1024},
		{"Rate", flags.Rate, 0.0},
		{"BreakerFailures", flags.BreakerFailures, uint32(5)},
		{"NoCache", flags.NoCache, false},
		{"From", flags.From, "English"},
		{"To", flags.To, "French"},
		{"Format", flags.Format, anki.FormatAPKG},
		{"DeckName", flags.DeckName, anki.DefaultDeckName},
		{"Output", flags.Output, "lingopad-vocabulary.apkg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}
