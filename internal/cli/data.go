package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/Siddiq2772/scapper-with-ui/internal/browser"
	"github.com/Siddiq2772/scapper-with-ui/internal/config"
	"github.com/Siddiq2772/scapper-with-ui/internal/dataset"
	"github.com/Siddiq2772/scapper-with-ui/internal/logger"
	"github.com/Siddiq2772/scapper-with-ui/internal/ui"
)

// newDatasetLoader builds the injected-then-fallback loader from config
func newDatasetLoader(cfg *config.Config, log *logger.Logger) *dataset.Loader {
	var injected dataset.Source
	if cfg.Data.ScriptPath != "" {
		injected = &dataset.ScriptSource{
			Path:   cfg.Data.ScriptPath,
			Global: cfg.Data.GlobalName,
		}
	}

	var fallback dataset.Source
	if src := fallbackSource(cfg); src != nil {
		fallback = src
	}

	return dataset.NewLoader(injected, fallback, log)
}

// fallbackSource returns the static JSON source, or nil when none is configured.
// A zero fetch timeout leaves the client waiting indefinitely.
func fallbackSource(cfg *config.Config) *dataset.JSONSource {
	if cfg.Data.FallbackPath == "" {
		return nil
	}
	return &dataset.JSONSource{
		Location: cfg.Data.FallbackPath,
		Client:   &http.Client{Timeout: cfg.Data.FetchTimeout},
	}
}

// openSession loads the dataset once for a batch command
func openSession(ctx context.Context, cfg *config.Config, log *logger.Logger) (*browser.Session, error) {
	ds, err := newDatasetLoader(cfg, log).Load(ctx)
	if err != nil {
		return nil, err
	}
	log.DebugWithFields("dataset loaded", []logger.Field{logger.Count(ds.Len())})
	return browser.NewSession(ds), nil
}

// useColor resolves the configured color mode
func useColor(cfg *config.Config) bool {
	switch cfg.Output.ColorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		return !ui.IsColorDisabled()
	}
}

// logWriter opens the configured log file, or returns nil for stderr
func logWriter(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	// #nosec G304 - path comes from configuration
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}
