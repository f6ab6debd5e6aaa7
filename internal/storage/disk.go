package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DiskStore keeps content as flat files under a base directory, one file
// per storage key.
type DiskStore struct {
	baseDir string
}

// NewDiskStore creates a disk-backed content store rooted at baseDir,
// creating the directory when createDirs is set.
func NewDiskStore(baseDir string, createDirs bool) (*DiskStore, error) {
	if createDirs {
		if err := os.MkdirAll(baseDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
	}
	return &DiskStore{baseDir: baseDir}, nil
}

func (s *DiskStore) path(key string) string {
	return filepath.Join(s.baseDir, key)
}

func (s *DiskStore) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write content: %w", err)
	}
	return nil
}

func (s *DiskStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	return data, nil
}

func (s *DiskStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete content: %w", err)
	}
	return nil
}
