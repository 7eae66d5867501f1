package staging

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/nokdoc/internal/util"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Object is a staged file waiting to be uploaded.
type Object struct {
	// Name is the slash separated path of the file, relative to the
	// destination root
	Name        string
	Size        int64
	ContentType string
}

// Uploader sends staged files to a remote destination.
type Uploader interface {
	Upload(ctx context.Context, obj Object, r io.Reader) error
}

type UploaderFunc func(ctx context.Context, obj Object, r io.Reader) error

func (fn UploaderFunc) Upload(ctx context.Context, obj Object, r io.Reader) error {
	return fn(ctx, obj, r)
}

// Mount hands a local staging directory to fn and uploads every regular file
// written into it once fn succeeds. The staging directory is removed in any
// case.
func Mount(ctx context.Context, uploader Uploader, fn func(ctx context.Context, fs afero.Fs) error) error {
	dir, err := util.MkdirTemp("staging_")
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			slog.WarnContext(ctx, "could not remove staging directory", slog.String("dir", dir), slogx.Error(err))
		}
	}()

	stagingFs := afero.NewBasePathFs(afero.NewOsFs(), dir)

	if err := fn(ctx, stagingFs); err != nil {
		return errors.WithStack(err)
	}

	err = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return errors.WithStack(err)
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		if err := upload(ctx, uploader, dir, path); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func upload(ctx context.Context, uploader Uploader, root string, path string) error {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return errors.WithStack(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return errors.WithStack(err)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return errors.WithStack(err)
	}

	obj := Object{
		Name:        filepath.ToSlash(rel),
		Size:        info.Size(),
		ContentType: mtype.String(),
	}

	file, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}

	defer file.Close()

	slog.DebugContext(ctx, "uploading staged file", slog.String("name", obj.Name), slog.Int64("size", obj.Size), slog.String("content_type", obj.ContentType))

	if err := uploader.Upload(ctx, obj, file); err != nil {
		return errors.Wrapf(err, "could not upload '%s'", obj.Name)
	}

	return nil
}
