package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"reelscan/internal/logging"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConsoleLoggerWritesAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("scan complete", "titles", 40, "below", 7)

	line := buf.String()
	if !strings.Contains(line, "INFO scan complete") {
		t.Fatalf("missing level/message: %q", line)
	}
	if !strings.Contains(line, "titles=40") || !strings.Contains(line, "below=7") {
		t.Fatalf("missing attributes: %q", line)
	}
}

func TestConsoleLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}

	logger.Warn("should appear")
	if !strings.Contains(buf.String(), "WARN should appear") {
		t.Fatalf("expected warn output, got %q", buf.String())
	}
}

func TestJSONLoggerUsesLowercaseLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hello")
	if !strings.Contains(buf.String(), `"level":"info"`) {
		t.Fatalf("expected lowercase level key, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Fatalf("expected msg key, got %q", buf.String())
	}
}
