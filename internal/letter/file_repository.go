package letter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

const indent = "  "

// FileRepository keeps opened letters as a JSON array in a single file.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

var _ Repository = (*FileRepository)(nil)

// NewFileRepository creates the directory of path when it is missing. The
// file itself is written on the first change.
func NewFileRepository(path string) (*FileRepository, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	slog.Info("Using file store.", "path", path)
	return &FileRepository{path: path}, nil
}

func (r *FileRepository) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.read()
}

func (r *FileRepository) Add(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	names, err := r.read()
	if err != nil {
		return false, err
	}

	if slices.Contains(names, name) {
		return false, nil
	}

	if err := r.write(append(names, name)); err != nil {
		return false, err
	}
	return true, nil
}

func (r *FileRepository) Remove(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	names, err := r.read()
	if err != nil {
		return false, err
	}

	i := slices.Index(names, name)
	if i < 0 {
		return false, nil
	}

	if err := r.write(slices.Delete(names, i, i+1)); err != nil {
		return false, err
	}
	return true, nil
}

func (r *FileRepository) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.write([]string{})
}

// read must be called with mu held.
func (r *FileRepository) read() ([]string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	names := []string{}
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrCorruptStore, r.path, err)
	}

	if names == nil {
		names = []string{}
	}
	return names, nil
}

// write replaces the file through a rename so readers never see a partial
// list. It must be called with mu held.
func (r *FileRepository) write(names []string) error {
	data, err := json.MarshalIndent(names, "", indent)
	if err != nil {
		return fmt.Errorf("encode opened letters: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err = os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("rename %s to %s: %w", tmpName, r.path, err)
	}

	return nil
}
