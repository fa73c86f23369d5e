package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Siddiq2772/scapper-with-ui/internal/logger"
)

var (
	// ErrUnavailable reports that neither the injected dataset nor the
	// fallback resource could be loaded.
	ErrUnavailable = errors.New("dataset unavailable")

	// ErrNotFound reports a lookup for an unknown problem id.
	ErrNotFound = errors.New("problem not found")
)

// Loader resolves the dataset from an injected source, falling back to a
// static resource when the injected one is missing or unreadable.
type Loader struct {
	injected Source
	fallback Source
	log      *logger.Logger
}

// NewLoader creates a loader. Either source may be nil.
func NewLoader(injected, fallback Source, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Discard()
	}
	return &Loader{
		injected: injected,
		fallback: fallback,
		log:      log.WithComponent("dataset"),
	}
}

// Load reads the dataset once. It never retries; on failure the returned
// error wraps ErrUnavailable together with each source's cause.
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	start := time.Now()

	var injectedErr error
	if l.injected != nil {
		records, err := l.injected.Load(ctx)
		if err == nil {
			l.log.DebugWithFields("loaded injected dataset", []logger.Field{
				logger.F("source", l.injected.Name()),
				logger.Count(len(records)),
				logger.Duration(time.Since(start)),
			})
			return New(records), nil
		}
		injectedErr = fmt.Errorf("%s: %w", l.injected.Name(), err)
		l.log.Debug("injected dataset unavailable: %v", err)
	} else {
		injectedErr = errors.New("no injected source configured")
	}

	if l.fallback == nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, injectedErr)
	}

	records, err := l.fallback.Load(ctx)
	if err != nil {
		l.log.Error("failed to load dataset: %v", err)
		return nil, fmt.Errorf("%w: injected: %w; fallback %s: %w", ErrUnavailable, injectedErr, l.fallback.Name(), err)
	}

	l.log.DebugWithFields("loaded fallback dataset", []logger.Field{
		logger.F("source", l.fallback.Name()),
		logger.Count(len(records)),
		logger.Duration(time.Since(start)),
	})
	return New(records), nil
}
