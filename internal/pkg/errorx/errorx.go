package errorx

import (
	"context"
	"errors"
	"log/slog"
)

// IsContextError reports whether err comes from a cancelled or expired context.
func IsContextError(err error) bool {
	if errors.Is(err, context.Canceled) {
		slog.Warn("request has been cancelled")
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) {
		slog.Warn("request timed out")
		return true
	}

	return false
}
