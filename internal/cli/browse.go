package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Siddiq2772/scapper-with-ui/internal/dataset"
	"github.com/Siddiq2772/scapper-with-ui/internal/logger"
	"github.com/Siddiq2772/scapper-with-ui/internal/ui"
)

var (
	browseWatch   bool
	browseNoMouse bool
)

func newBrowseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse problem statements interactively",
		Long: `Open the interactive browser.

Pick a category, then a theme, then an organization to see its problem
statements. Breadcrumbs at the top jump back to any level; enter on a
problem opens its details.

Examples:
  psbrowse
  psbrowse browse --data ./out/data.js
  psbrowse browse --watch`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}

	addBrowseFlags(cmd)
	return cmd
}

func addBrowseFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&browseWatch, "watch", "w", false, "reload when the dataset files change")
	cmd.Flags().BoolVar(&browseNoMouse, "no-mouse", false, "disable mouse support")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	if !ui.SetThemeByName(cfg.UI.Theme) {
		return fmt.Errorf("unknown theme: %s", cfg.UI.Theme)
	}
	if cfg.Output.ColorMode == "never" {
		_ = os.Setenv("NO_COLOR", "1")
	}

	// The browser owns the terminal; keep diagnostics off the screen
	logFile, err := logWriter(cfg.Log.File)
	if err != nil {
		return err
	}
	var out io.Writer = io.Discard
	if logFile != nil {
		defer func() {
			_ = logFile.Close()
		}()
		out = logFile
	}
	log := newLogger(out)

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := ui.Options{
		Context:       ctx,
		Loader:        newDatasetLoader(cfg, log),
		Log:           log,
		MarkdownStyle: cfg.UI.MarkdownStyle,
	}

	if browseWatch || cfg.Data.Watch {
		watcher, err := dataset.NewWatcher(cfg.Data.ScriptPath, cfg.Data.FallbackPath)
		if err != nil {
			return fmt.Errorf("failed to watch dataset: %w", err)
		}
		defer func() {
			if err := watcher.Close(); err != nil {
				log.WarnWithFields("failed to close watcher", []logger.Field{logger.Error(err)})
			}
		}()
		opts.Watcher = watcher
	}

	return ui.Run(opts, ui.RunOptions{
		Mouse:     cfg.UI.Mouse && !browseNoMouse,
		AltScreen: cfg.UI.AltScreen,
	})
}

// commandContext returns the command context, or background outside Execute
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
