package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/lingopad/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lingopad",
		Short: "Translator, notepad and French word game",
		Long: `lingopad is a small desktop app with three tools behind a login form:
text translation between 23 languages, a notes scratchpad, and an
English to French word guessing game.

Examples:
  lingopad                                  # Launch the GUI (default)
  lingopad translate --to German "Good day" # Translate from the command line
  lingopad export-deck -o words.apkg        # Export the game vocabulary to Anki`,
		Args:         cobra.NoArgs,
		Version:      internal.Version,
		SilenceUsage: true,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.lingopad.yaml)")
	cmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable development logging")

	// Translation backend
	cmd.PersistentFlags().StringVar(&flags.Backend, "backend", flags.Backend, "Translation backend: openai or gemini")
	cmd.PersistentFlags().StringVar(&flags.Model, "model", "", "Model identifier (default: gpt-4o-mini for openai, gemini-2.0-flash for gemini)")
	cmd.PersistentFlags().IntVar(&flags.MaxInput, "max-input", flags.MaxInput, "Maximum number of input characters sent to the model")
	cmd.PersistentFlags().Float64Var(&flags.Rate, "rate", 0, "Maximum translation requests per second (0 = unlimited)")
	cmd.PersistentFlags().Uint32Var(&flags.BreakerFailures, "breaker-failures", flags.BreakerFailures, "Consecutive failures before translations are suspended")
	cmd.PersistentFlags().BoolVar(&flags.NoCache, "no-cache", false, "Disable the in-memory translation cache")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("translation.backend", cmd.PersistentFlags().Lookup("backend"))
	viper.BindPFlag("translation.model", cmd.PersistentFlags().Lookup("model"))
	viper.BindPFlag("translation.max_input", cmd.PersistentFlags().Lookup("max-input"))
	viper.BindPFlag("translation.rate", cmd.PersistentFlags().Lookup("rate"))
	viper.BindPFlag("translation.breaker_failures", cmd.PersistentFlags().Lookup("breaker-failures"))
	viper.BindPFlag("translation.no_cache", cmd.PersistentFlags().Lookup("no-cache"))
}

// ApplyConfig copies configured values into flags that were not set on the
// command line
func ApplyConfig(cmd *cobra.Command, flags *Flags) {
	applyConfig(cmd.Flags(), flags)
}

func applyConfig(pf *pflag.FlagSet, flags *Flags) {
	if !pf.Changed("debug") {
		flags.Debug = viper.GetBool("debug")
	}
	if !pf.Changed("backend") && viper.IsSet("translation.backend") {
		flags.Backend = viper.GetString("translation.backend")
	}
	if !pf.Changed("model") && viper.IsSet("translation.model") {
		flags.Model = viper.GetString("translation.model")
	}
	if !pf.Changed("max-input") && viper.IsSet("translation.max_input") {
		flags.MaxInput = viper.GetInt("translation.max_input")
	}
	if !pf.Changed("rate") && viper.IsSet("translation.rate") {
		flags.Rate = viper.GetFloat64("translation.rate")
	}
	if !pf.Changed("breaker-failures") && viper.IsSet("translation.breaker_failures") {
		flags.BreakerFailures = viper.GetUint32("translation.breaker_failures")
	}
	if !pf.Changed("no-cache") && viper.IsSet("translation.no_cache") {
		flags.NoCache = viper.GetBool("translation.no_cache")
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// A missing .env file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".lingopad")
	}

	// LINGOPAD_TRANSLATION_BACKEND maps to translation.backend
	viper.SetEnvPrefix("LINGOPAD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translation.openai_key")
}

// GetOpenAIBaseURL returns a custom OpenAI-compatible endpoint, if any
func GetOpenAIBaseURL() string {
	return viper.GetString("translation.openai_base_url")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translation.gemini_key")
}
