package cli

import "codeberg.org/snonux/lingopad/internal/anki"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile string
	Debug   bool

	// Translation backend flags
	Backend         string
	Model           string
	MaxInput        int
	Rate            float64
	BreakerFailures uint32
	NoCache         bool

	// translate command
	From  string
	To    string
	Batch string

	// export-deck command
	Output   string
	Format   string
	DeckName string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Backend:         "openai",
		MaxInput:        1024,
		BreakerFailures: 5,
		From:            "English",
		To:              "French",
		Output:          "lingopad-vocabulary.apkg",
		Format:          anki.FormatAPKG,
		DeckName:        anki.DefaultDeckName,
	}
}
