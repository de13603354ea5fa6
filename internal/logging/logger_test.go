package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T, level string) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	lvl := new(slog.LevelVar)
	lvl.Set(parseLevel(level))
	return slog.New(newConsoleHandler(buf, lvl)), buf
}

func TestConsoleHandlerLiftsComponent(t *testing.T) {
	logger, buf := newTestLogger(t, "info")
	NewComponentLogger(logger, "dispatcher").Info("printed", String(FieldDevice, "/dev/ttyUSB0"))

	line := buf.String()
	if !strings.Contains(line, " INFO dispatcher: printed") {
		t.Fatalf("component not lifted into prefix: %q", line)
	}
	if !strings.Contains(line, "device=/dev/ttyUSB0") {
		t.Fatalf("attr missing: %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should not appear as key=value: %q", line)
	}
}

func TestConsoleHandlerQuotesValues(t *testing.T) {
	logger, buf := newTestLogger(t, "info")
	logger.Info("msg", String("reason", "no device found"))

	if !strings.Contains(buf.String(), `reason="no device found"`) {
		t.Fatalf("expected quoted value: %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(t, "warn")
	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "WARN visible") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if got := parseLevel("bogus"); got != slog.LevelInfo {
		t.Fatalf("parseLevel(bogus) = %v", got)
	}
	if got := parseLevel("DEBUG"); got != slog.LevelDebug {
		t.Fatalf("parseLevel(DEBUG) = %v", got)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
