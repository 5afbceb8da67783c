package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sokinpui/codegen/internal/logging"
	"github.com/sokinpui/codegen/model"
)

func TestNew_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{Level: logging.LevelInfo, Output: &buf})

	logger.Info("wrote file", logging.Path("gen.go"), logging.Mode(model.ModeWrite))

	out := buf.String()
	if !strings.Contains(out, "path=gen.go") || !strings.Contains(out, "mode=write") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{Level: logging.LevelInfo, Output: &buf, JSON: true})

	logger.Info("checked file", logging.Distance(4))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if entry["msg"] != "checked file" {
		t.Errorf("expected msg='checked file', got %v", entry["msg"])
	}
	if entry["distance"] != float64(4) {
		t.Errorf("expected distance=4, got %v", entry["distance"])
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{Level: logging.LevelInfo, Output: &buf})

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected debug output to be filtered, got %q", buf.String())
	}
}

func TestErr(t *testing.T) {
	if attr := logging.Err(nil); attr.Key != "" {
		t.Errorf("expected empty attr for nil error, got %v", attr)
	}
	if attr := logging.Err(errors.New("boom")); attr.Key != "error" {
		t.Errorf("expected key %q, got %q", "error", attr.Key)
	}
}

func TestSetDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{Level: logging.LevelDebug, Output: &buf})
	logging.SetDefault(logger)

	if logging.Default() != logger {
		t.Fatal("Default() did not return the installed logger")
	}
	logging.Default().Debug("check", logging.Regions(2))
	if !strings.Contains(buf.String(), "regions=2") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
