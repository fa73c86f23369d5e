package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Siddiq2772/scapper-with-ui/internal/config"
	"github.com/Siddiq2772/scapper-with-ui/internal/emoji"
	"github.com/Siddiq2772/scapper-with-ui/internal/logger"
)

var (
	cfgFile      string
	verbose      bool
	noColor      bool
	noEmoji      bool
	outputFmt    string
	dataPath     string
	fallbackPath string

	globalConfig *config.Config
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "psbrowse",
		Short: "Terminal browser for scraped problem statements",
		Long: `psbrowse browses a scraped problem statement dataset by drilling down
category → theme → organization → problem statement.

The dataset is read from the script produced by the scraper (./data.js),
falling back to a static JSON file or URL (./data.json). Without a
subcommand the interactive browser is started.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}

			cfg, err := loadGlobalConfig(cmd)
			if err != nil {
				return err
			}
			globalConfig = cfg

			// Set emoji state for all components
			emoji.SetEmojiDisabled(noEmoji || !cfg.Output.Emoji)
			return nil
		},
		RunE: runBrowse,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "output format (text, json, markdown, csv)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "injected dataset script (default from config: ./data.js)")
	rootCmd.PersistentFlags().StringVar(&fallbackPath, "fallback", "", "fallback JSON file or URL (default from config: ./data.json)")
	addBrowseFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(newBrowseCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newPickCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// loadGlobalConfig loads the config file and applies command line overrides
func loadGlobalConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Flags win over config values only when given
	if dataPath != "" {
		cfg.Data.ScriptPath = dataPath
	}
	if fallbackPath != "" {
		cfg.Data.FallbackPath = fallbackPath
	}
	if outputFmt != "" {
		cfg.Output.DefaultFormat = outputFmt
	}
	if cmd.Flag("verbose").Changed {
		cfg.Output.Verbose = verbose
	}
	if noColor {
		cfg.Output.ColorMode = "never"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// GetGlobalConfig returns the configuration loaded for the running command,
// or the defaults when none has been loaded yet.
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "psbrowse %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// Global helpers
func isVerbose() bool {
	return GetGlobalConfig().Output.Verbose
}

func getOutputFormat() string {
	return GetGlobalConfig().Output.DefaultFormat
}

func isEmojiDisabled() bool {
	return emoji.IsEmojiDisabled()
}

// newLogger creates a component logger honoring the verbose setting
func newLogger(w io.Writer) *logger.Logger {
	log := logger.NewWithCallback("psbrowse", isVerbose)
	if w != nil {
		log.SetOutput(w)
	}
	return log
}
