package filesystem

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// WriteFile creates name, and its parent directories, on the mounted
// filesystem and fills it through fn.
func WriteFile(fs afero.Fs, name string, fn func(w io.Writer) error) (err error) {
	if dir := filepath.Dir(name); dir != "." && dir != "/" {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return errors.WithStack(err)
		}
	}

	file, err := fs.Create(name)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = errors.WithStack(closeErr)
		}
	}()

	if err := fn(file); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Publish mounts the backend and writes a single file on it.
func Publish(ctx context.Context, backend Backend, name string, fn func(w io.Writer) error) error {
	err := backend.Mount(ctx, func(ctx context.Context, fs afero.Fs) error {
		fs = NewLogger(ctx, fs, slog.LevelDebug)

		if err := WriteFile(fs, name, fn); err != nil {
			return errors.Wrapf(err, "could not write '%s'", name)
		}

		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}
