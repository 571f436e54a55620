package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

var ErrInvalidKey = errors.New("storage: invalid key")

// FileStore keeps uploaded files under one directory. Every access goes
// through an os.Root, so no key or symlink reaches outside it.
type FileStore struct {
	root *os.Root
}

func NewFileStore(basePath string) (*FileStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path: %w", err)
	}
	root, err := os.OpenRoot(basePath)
	if err != nil {
		return nil, fmt.Errorf("storage: open root: %w", err)
	}
	return &FileStore{root: root}, nil
}

func (s *FileStore) Close() error {
	if s == nil {
		return nil
	}
	return s.root.Close()
}

// Write stores data at key, creating parent directories, and returns the
// cleaned key.
func (s *FileStore) Write(ctx context.Context, key string, data []byte) (string, error) {
	if s == nil {
		return "", errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	if err := s.mkdirs(path.Dir(clean)); err != nil {
		return "", err
	}
	f, err := s.root.OpenFile(clean, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("storage: create %s: %w", clean, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("storage: write %s: %w", clean, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("storage: close %s: %w", clean, err)
	}
	return clean, nil
}

// Open returns the regular file stored at key. A directory or a missing
// key reports fs.ErrNotExist.
func (s *FileStore) Open(key string) (*os.File, fs.FileInfo, error) {
	if s == nil {
		return nil, nil, errors.New("storage: no store configured")
	}
	clean, err := cleanKey(key)
	if err != nil {
		return nil, nil, err
	}
	f, err := s.root.Open(clean)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, nil, fmt.Errorf("storage: %s: %w", clean, fs.ErrNotExist)
	}
	return f, info, nil
}

func (s *FileStore) mkdirs(dir string) error {
	if dir == "." {
		return nil
	}
	current := ""
	for _, segment := range strings.Split(dir, "/") {
		current = path.Join(current, segment)
		if err := s.root.Mkdir(current, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("storage: mkdir %s: %w", current, err)
		}
	}
	return nil
}

// cleanKey turns key into a slash separated path relative to the root,
// e.g. "/a/./b.png" becomes "a/b.png". Keys that climb out are rejected.
func cleanKey(key string) (string, error) {
	key = strings.ReplaceAll(strings.TrimSpace(key), "\\", "/")
	key = path.Clean(strings.TrimLeft(key, "/"))
	if key == "." || !fs.ValidPath(key) {
		return "", ErrInvalidKey
	}
	return key, nil
}
