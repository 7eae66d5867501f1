package util

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/xid"
)

var (
	createTempDirOnce sync.Once
	createTempDirErr  error
	tempDir           string
)

// TempDir returns the process wide temporary directory, created on first use.
func TempDir() (string, error) {
	createTempDirOnce.Do(func() {
		tmp, err := os.MkdirTemp("", "nokdoc-*")
		if err != nil {
			createTempDirErr = errors.WithStack(err)
			return
		}

		tempDir = tmp
	})
	if createTempDirErr != nil {
		return "", errors.WithStack(createTempDirErr)
	}

	return tempDir, nil
}

// MkdirTemp creates a uniquely named directory, prefixed with prefix, inside
// the process temporary directory.
func MkdirTemp(prefix string) (string, error) {
	root, err := TempDir()
	if err != nil {
		return "", errors.WithStack(err)
	}

	dir := filepath.Join(root, prefix+xid.New().String())

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", errors.WithStack(err)
	}

	return dir, nil
}

// CleanupTempDir removes the process temporary directory, if it was created.
func CleanupTempDir() error {
	if tempDir == "" {
		return nil
	}

	if err := os.RemoveAll(tempDir); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
