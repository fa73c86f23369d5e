package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestVerboseGating(t *testing.T) {
	verbose := false
	var buf bytes.Buffer

	log := NewWithCallback("test", func() bool { return verbose })
	log.SetOutput(&buf)

	log.Debug("hidden %d", 1)
	log.Info("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("Expected no output while quiet, got %q", buf.String())
	}

	log.Warn("shown")
	if !strings.Contains(buf.String(), "WARN [test] shown") {
		t.Errorf("Expected warning line, got %q", buf.String())
	}

	buf.Reset()
	verbose = true
	log.Debug("visible %s", "now")
	if !strings.Contains(buf.String(), "DEBUG [test] visible now") {
		t.Errorf("Expected debug line, got %q", buf.String())
	}
}

func TestFields(t *testing.T) {
	var buf bytes.Buffer
	log := New("dataset", nil)
	log.SetOutput(&buf)

	log.WarnWithFields("reload failed", []Field{F("source", "data.js"), Count(3), Error(errors.New("boom"))})

	line := buf.String()
	if !strings.Contains(line, "[source=data.js count=3 error=boom]") {
		t.Errorf("Expected fields in line, got %q", line)
	}
}

func TestDerivedLoggersShareOutput(t *testing.T) {
	var buf bytes.Buffer
	root := New("root", nil)
	child := root.WithComponent("child")

	root.SetOutput(&buf)
	child.Error("failure")

	if !strings.Contains(buf.String(), "ERROR [child] failure") {
		t.Errorf("Expected child output on redirected writer, got %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	// must not panic
	Discard().WithComponent("x").Error("dropped")
}
