package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerNotNil(t *testing.T) {
	logger := NewLogger(Config{})
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
}

func TestNewLoggerUsesTextHandlerWithInfoLevel(t *testing.T) {
	logger := NewLogger(Config{Format: "text", Level: "info"})

	if enabled := logger.Enabled(context.Background(), slog.LevelInfo); !enabled {
		t.Fatal("expected info level to be enabled")
	}

	if enabled := logger.Enabled(context.Background(), slog.LevelDebug); enabled {
		t.Fatal("expected debug level to be disabled")
	}
}

func TestNewLoggerParsesLevels(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for raw, want := range cases {
		if got := parseLevel(raw); got != want {
			t.Fatalf("level %q expected %s, got %s", raw, want, got)
		}
	}
}

func TestNewLoggerJSONIncludesServiceAndVersion(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(Config{Format: "json", Service: "svc", Version: "v1"}, &buf)
	logger.Info("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json output, got %q: %v", buf.String(), err)
	}
	if line[FieldService] != "svc" || line[FieldVersion] != "v1" {
		t.Fatalf("expected common fields, got %v", line)
	}
}

func TestNewLoggerTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(Config{}, &buf)
	logger.Info("hello", FieldCount, 3)
	if !strings.Contains(buf.String(), "msg=hello") || !strings.Contains(buf.String(), "count=3") {
		t.Fatalf("unexpected text output %q", buf.String())
	}
}

func TestNewLoggerToWritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(Config{Service: "statsctl"}, &buf)
	logger.Info("hello")

	if !strings.Contains(buf.String(), "hello") || !strings.Contains(buf.String(), "statsctl") {
		t.Fatalf("expected message and service in output, got %q", buf.String())
	}
}
