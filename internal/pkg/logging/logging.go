package logging

import (
	"io"
	"log/slog"
	"strings"
)

const maskChar = "*"

// SetupLogger installs the default slog logger. Production logs are JSON,
// everything else is text.
func SetupLogger(appEnv, logLevel string, out io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(logLevel),
	}

	var handler slog.Handler = slog.NewTextHandler(out, opts)

	if appEnv == "production" {
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a level name to a slog.Level, falling back to info.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Masked is a log attribute that hides a secret value.
func Masked(key string) slog.Attr {
	return slog.String(key, maskChar)
}
