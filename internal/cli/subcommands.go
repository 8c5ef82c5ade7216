package cli

import (
	"github.com/spf13/cobra"

	"codeberg.org/snonux/lingopad/internal/anki"
)

// CreateTranslateCommand creates the headless translate command
func CreateTranslateCommand(flags *Flags, run func(cmd *cobra.Command, args []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate [text]",
		Short: "Translate text without starting the GUI",
		Long: `Translate text from one supported language to another.

Languages may be given by name ("German") or by code ("de").

Examples:
  lingopad translate "Where is the station?"
  lingopad translate --from fr --to en "Bonne nuit"
  lingopad translate --batch phrases.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	cmd.Flags().StringVar(&flags.From, "from", flags.From, "Source language name or code")
	cmd.Flags().StringVar(&flags.To, "to", flags.To, "Target language name or code")
	cmd.Flags().StringVar(&flags.Batch, "batch", "", "Translate every line of a file (blank lines and # comments are skipped)")

	return cmd
}

// CreateLanguagesCommand creates the command listing supported languages
func CreateLanguagesCommand(run func(cmd *cobra.Command, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
}

// CreateModelsCommand creates the command listing OpenAI translation models
func CreateModelsCommand(run func(cmd *cobra.Command, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List OpenAI chat models usable for translation",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
}

// CreateExportDeckCommand creates the command exporting the game vocabulary
func CreateExportDeckCommand(flags *Flags, run func(cmd *cobra.Command, args []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-deck",
		Short: "Export the word game vocabulary as an Anki deck",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return anki.CheckFormat(flags.Format)
		},
		RunE: run,
	}

	cmd.Flags().StringVarP(&flags.Output, "output", "o", flags.Output, "Output file")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", flags.Format, "Deck format: "+anki.FormatAPKG+" or "+anki.FormatCSV)
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")

	return cmd
}
