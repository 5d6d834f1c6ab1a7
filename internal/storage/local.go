package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// localStorage keeps promoted files on disk. Keys are interpreted relative to
// the process working directory, so a key "uploads/x.pdf" is also the path the
// HTTP layer serves statically.
type localStorage struct {
	dir     string
	baseURL string
}

// NewLocal creates a disk-backed storage rooted at dir (the uploads directory),
// creating it if absent. Promotion relies on rename, so temp files must live on
// the same filesystem; callers get that for free by staging temp files in dir.
func NewLocal(dir, baseURL string) (Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &localStorage{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Promote renames the temp file onto the final key. Rename is atomic within a
// filesystem and overwrites an existing destination, which yields the
// last-writer-wins behavior for two uploads racing on one key.
func (l *localStorage) Promote(_ context.Context, tempPath, key string) error {
	dest := filepath.FromSlash(key)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}
	if err := os.Rename(tempPath, dest); err != nil {
		return fmt.Errorf("promote upload: %w", err)
	}
	return nil
}

// Remove deletes the file for key, tolerating absence.
func (l *localStorage) Remove(_ context.Context, key string) error {
	err := os.Remove(filepath.FromSlash(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// URL maps a key onto the statically served uploads path.
func (l *localStorage) URL(key string) string {
	return l.baseURL + "/" + key
}
