package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/ferdiebergado/sulat/internal/pkg/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := logging.ParseLevel(tt.input); got != tt.want {
				t.Errorf("logging.ParseLevel(%q) = %v, want: %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetupLogger(t *testing.T) {
	defaultLogger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(defaultLogger) })

	var buf bytes.Buffer
	logger := logging.SetupLogger("production", "info", &buf)
	logger.Debug("hidden")
	logger.Info("shown", logging.Masked("password"))

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record was written at info level: %s", out)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("production logger did not write json: %v", err)
	}

	if got := rec["password"]; got != "*" {
		t.Errorf("rec[%q] = %v, want: %q", "password", got, "*")
	}
}
