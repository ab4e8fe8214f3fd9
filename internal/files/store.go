// Package files holds uploaded image bytes and keeps them in step with the
// documents that reference them by URL.
package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	ErrNotExist = errors.New("file does not exist")
	ErrExist    = errors.New("file already exists")
)

// Store is the file store contract. Names are bare filenames, never paths.
type Store interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, name string) error
	Location(name string) string
}

// LocalStore keeps files in a directory on disk.
type LocalStore struct {
	dir string
}

// NewLocalStore creates dir if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Location(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *LocalStore) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	if !ValidName(name) {
		return fmt.Errorf("invalid file name %q", name)
	}
	f, err := os.OpenFile(s.Location(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return ErrExist
		}
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(s.Location(name))
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(s.Location(name))
		return err
	}
	return nil
}

func (s *LocalStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if !ValidName(name) {
		return nil, ErrNotExist
	}
	f, err := os.Open(s.Location(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotExist
	}
	return f, err
}

func (s *LocalStore) Delete(ctx context.Context, name string) error {
	if !ValidName(name) {
		return ErrNotExist
	}
	err := os.Remove(s.Location(name))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotExist
	}
	return err
}
