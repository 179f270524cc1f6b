package errorx_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ferdiebergado/sulat/internal/pkg/errorx"
)

func TestIsContextError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"Canceled", context.Canceled, true},
		{"Deadline exceeded", context.DeadlineExceeded, true},
		{"Wrapped cancel", fmt.Errorf("read store: %w", context.Canceled), true},
		{"Other error", errors.New("disk full"), false},
		{"Nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := errorx.IsContextError(tt.err); got != tt.want {
				t.Errorf("errorx.IsContextError(%v) = %v, want: %v", tt.err, got, tt.want)
			}
		})
	}
}
