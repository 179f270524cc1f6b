// Package letter keeps track of which letters have been opened.
package letter

import (
	"context"
	"errors"
)

var (
	ErrQueryFailed  = errors.New("letter repository: query failed")
	ErrCorruptStore = errors.New("letter repository: corrupt store")
)

// Repository stores the names of opened letters in the order they were
// opened. Implementations are safe for concurrent use.
type Repository interface {
	List(ctx context.Context) ([]string, error)

	// Add records name as opened. added is false when it already was.
	Add(ctx context.Context, name string) (added bool, err error)

	// Remove forgets name. removed is false when it was not opened.
	Remove(ctx context.Context, name string) (removed bool, err error)

	Reset(ctx context.Context) error
}
