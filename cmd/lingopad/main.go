package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codeberg.org/snonux/lingopad/internal/cli"
	"codeberg.org/snonux/lingopad/internal/logging"
	"codeberg.org/snonux/lingopad/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// No subcommand launches the GUI
	rootCmd.RunE = withProcessor(flags, func(proc *processor.Processor, cmd *cobra.Command, args []string) error {
		return proc.RunGUIMode()
	})

	rootCmd.AddCommand(
		cli.CreateTranslateCommand(flags, withProcessor(flags, func(proc *processor.Processor, cmd *cobra.Command, args []string) error {
			text := ""
			if len(args) > 0 {
				text = args[0]
			}
			return proc.Translate(cmd.Context(), text)
		})),
		cli.CreateLanguagesCommand(withProcessor(flags, func(proc *processor.Processor, cmd *cobra.Command, args []string) error {
			return proc.ListLanguages()
		})),
		cli.CreateModelsCommand(withProcessor(flags, func(proc *processor.Processor, cmd *cobra.Command, args []string) error {
			return proc.ListModels(cmd.Context())
		})),
		cli.CreateExportDeckCommand(flags, withProcessor(flags, func(proc *processor.Processor, cmd *cobra.Command, args []string) error {
			return proc.ExportDeck()
		})),
	)

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// withProcessor merges the config into flags, builds the logger and the
// processor, and then runs fn
func withProcessor(flags *cli.Flags, fn func(*processor.Processor, *cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cli.ApplyConfig(cmd, flags)

		logger, err := logging.New(flags.Debug)
		if err != nil {
			return err
		}
		defer logger.Sync()

		logger.Debug("starting", zap.String("command", cmd.Name()), zap.String("backend", flags.Backend))
		return fn(processor.NewProcessor(flags, logger), cmd, args)
	}
}
