package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info", false)

	l.Debug("hidden")
	l.Info("balanced", "session_id", "abc")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if rec["msg"] != "balanced" || rec["session_id"] != "abc" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestNewDevelopment(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", true)

	l.Debug("shuffled", "session_id", "abc")

	out := buf.String()
	if !strings.Contains(out, "shuffled") || !strings.Contains(out, "session_id") {
		t.Errorf("unexpected console output: %q", out)
	}
	if json.Valid([]byte(strings.TrimSpace(out))) {
		t.Error("development output should not be JSON")
	}
}
