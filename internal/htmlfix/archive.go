package htmlfix

import (
	"archive/zip"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/nokdoc/internal/workflow"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/spf13/afero"
)

const tempDirPrefix = "tmp_nokdoc_docs_"

// IsArchive reports whether the file at path is a zip archive.
func (f *Fixer) IsArchive(path string) (bool, error) {
	file, err := f.fs.Open(path)
	if err != nil {
		return false, errors.WithStack(err)
	}

	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return false, errors.WithStack(err)
	}

	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("application/zip") {
			return true, nil
		}
	}

	return false, nil
}

// FixArchive extracts the archive next to itself, fixes the extracted
// directories and replaces the archive with a new one holding the renamed
// tree.
func (f *Fixer) FixArchive(ctx context.Context, path string) ([]Rename, error) {
	tempDir := filepath.Join(filepath.Dir(path), tempDirPrefix+xid.New().String())
	tempArchive := path + ".new"

	var renames []Rename

	fix := workflow.New(
		workflow.StepFunc(
			"extract",
			func(ctx context.Context) error {
				if err := f.fs.MkdirAll(tempDir, 0o755); err != nil {
					return errors.WithStack(err)
				}

				if err := f.extract(path, tempDir); err != nil {
					return errors.Wrapf(err, "could not extract '%s'", path)
				}

				return nil
			},
			nil,
		),
		workflow.StepFunc(
			"rename",
			func(ctx context.Context) (err error) {
				renames, err = f.FixDir(ctx, tempDir)
				return errors.WithStack(err)
			},
			nil,
		),
		workflow.StepFunc(
			"compress",
			func(ctx context.Context) error {
				if err := f.compress(tempDir, tempArchive); err != nil {
					return errors.Wrapf(err, "could not archive '%s'", tempDir)
				}

				return nil
			},
			func(ctx context.Context) error {
				if err := f.fs.Remove(tempArchive); err != nil && !errors.Is(err, os.ErrNotExist) {
					return errors.WithStack(err)
				}

				return nil
			},
		),
		workflow.StepFunc(
			"replace",
			func(ctx context.Context) error {
				return errors.WithStack(f.fs.Rename(tempArchive, path))
			},
			nil,
		),
	)

	defer func() {
		if err := f.fs.RemoveAll(tempDir); err != nil {
			slog.WarnContext(ctx, "could not remove temporary directory", slog.String("dir", tempDir), slogx.Error(errors.WithStack(err)))
		}
	}()

	if err := fix.Execute(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	return renames, nil
}

func (f *Fixer) extract(path string, dir string) error {
	file, err := f.fs.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}

	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return errors.WithStack(err)
	}

	reader, err := zip.NewReader(file, info.Size())
	if err != nil {
		return errors.WithStack(err)
	}

	root := filepath.Clean(dir) + string(filepath.Separator)

	for _, entry := range reader.File {
		target := filepath.Join(dir, filepath.FromSlash(entry.Name))

		if !strings.HasPrefix(target+string(filepath.Separator), root) {
			return errors.Wrapf(ErrUnsafeEntry, "'%s'", entry.Name)
		}

		if entry.FileInfo().IsDir() {
			if err := f.fs.MkdirAll(target, 0o755); err != nil {
				return errors.WithStack(err)
			}

			continue
		}

		if err := f.extractEntry(entry, target); err != nil {
			return errors.Wrapf(err, "could not extract '%s'", entry.Name)
		}
	}

	return nil
}

func (f *Fixer) extractEntry(entry *zip.File, target string) error {
	if err := f.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.WithStack(err)
	}

	r, err := entry.Open()
	if err != nil {
		return errors.WithStack(err)
	}

	defer r.Close()

	w, err := f.fs.Create(target)
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return errors.WithStack(err)
	}

	if err := w.Close(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (f *Fixer) compress(dir string, path string) (err error) {
	file, err := f.fs.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = errors.WithStack(closeErr)
		}
	}()

	writer := zip.NewWriter(file)

	err = afero.Walk(f.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return errors.WithStack(err)
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return errors.WithStack(err)
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return errors.WithStack(err)
		}

		header.Name = filepath.ToSlash(rel)
		header.Method = zip.Deflate

		w, err := writer.CreateHeader(header)
		if err != nil {
			return errors.WithStack(err)
		}

		r, err := f.fs.Open(path)
		if err != nil {
			return errors.WithStack(err)
		}

		defer r.Close()

		if _, err := io.Copy(w, r); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := writer.Close(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
