package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
)

// DefaultGlobalName is the variable the scrape step assigns the dataset to
// inside the injected script.
const DefaultGlobalName = "SIH_DATA"

// maxRemoteSize bounds how much of a remote dataset is read.
const maxRemoteSize = 256 << 20

var errMalformed = errors.New("dataset is not an array of problem records")

// Source yields the raw records of a dataset
type Source interface {
	Name() string
	Load(ctx context.Context) ([]ProblemRecord, error)
}

// InjectedSource serves records that were already resident in the process,
// for example embedded at build time.
type InjectedSource struct {
	Records []ProblemRecord
}

// Name implements Source
func (s *InjectedSource) Name() string { return "injected records" }

// Load implements Source. A nil slice means nothing was injected.
func (s *InjectedSource) Load(_ context.Context) ([]ProblemRecord, error) {
	if s.Records == nil {
		return nil, errors.New("no records injected")
	}
	return s.Records, nil
}

// ScriptSource reads the script emitted by the scrape step, which assigns the
// dataset literal to a global, e.g. `window.SIH_DATA = [...];`.
type ScriptSource struct {
	Path   string
	Global string
}

// Name implements Source
func (s *ScriptSource) Name() string { return s.Path }

// Load implements Source
func (s *ScriptSource) Load(_ context.Context) ([]ProblemRecord, error) {
	// #nosec G304 - path comes from configuration
	data, err := os.ReadFile(filepath.Clean(s.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	global := s.Global
	if global == "" {
		global = DefaultGlobalName
	}

	literal, err := extractAssignment(data, global)
	if err != nil {
		return nil, err
	}
	return decodeRecords(jsonc.ToJSON(literal))
}

// extractAssignment returns the right-hand side of the assignment to global.
func extractAssignment(src []byte, global string) ([]byte, error) {
	re := regexp.MustCompile(`(?:window\.|globalThis\.|var\s+|let\s+|const\s+)?\b` + regexp.QuoteMeta(global) + `\s*=`)
	loc := re.FindIndex(src)
	if loc == nil {
		return nil, fmt.Errorf("no assignment to %s found", global)
	}

	literal := bytes.TrimSpace(src[loc[1]:])
	literal = bytes.TrimRight(literal, "; \t\r\n")
	if len(literal) == 0 {
		return nil, fmt.Errorf("empty assignment to %s", global)
	}
	return literal, nil
}

// JSONSource reads a static JSON array from a relative path or an http(s) URL.
type JSONSource struct {
	Location string
	Client   *http.Client
}

// Name implements Source
func (s *JSONSource) Name() string { return s.Location }

// Load implements Source
func (s *JSONSource) Load(ctx context.Context) ([]ProblemRecord, error) {
	if isRemote(s.Location) {
		return s.fetch(ctx)
	}

	// #nosec G304 - path comes from configuration
	data, err := os.ReadFile(filepath.Clean(s.Location))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Location, err)
	}
	return decodeRecords(data)
}

func (s *JSONSource) fetch(ctx context.Context) ([]ProblemRecord, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Location, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.Location, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", s.Location, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return decodeRecords(data)
}

// decodeRecords parses a JSON array of records. A top-level null or any
// non-array value is malformed; an empty array is a valid, empty dataset.
func decodeRecords(data []byte) ([]ProblemRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errMalformed
	}

	records := make([]ProblemRecord, 0)
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformed, err)
	}
	return records, nil
}

func isRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
