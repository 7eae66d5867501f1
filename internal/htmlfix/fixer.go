package htmlfix

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const indexFile = "index.html"

// Rename is a documentation directory renamed by the fixer.
type Rename struct {
	From string
	To   string
}

type Fixer struct {
	fs afero.Fs
}

// Fix processes path, either a zip archive or a directory of unpacked
// documentation folders.
func (f *Fixer) Fix(ctx context.Context, path string) ([]Rename, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if info.IsDir() {
		renames, err := f.FixDir(ctx, path)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return renames, nil
	}

	isArchive, err := f.IsArchive(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if !isArchive {
		return nil, errors.Wrapf(ErrUnsupportedInput, "'%s' is neither a directory nor a zip archive", path)
	}

	renames, err := f.FixArchive(ctx, path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return renames, nil
}

// FixDir renames every sub directory of dir after the title of its index
// page. It stops at the first directory without a usable title.
func (f *Fixer) FixDir(ctx context.Context, dir string) ([]Rename, error) {
	entries, err := afero.ReadDir(f.fs, dir)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	renames := make([]Rename, 0)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		current := entry.Name()

		name, found, err := f.readTitle(filepath.Join(dir, current, indexFile))
		if err != nil {
			return renames, errors.WithStack(err)
		}

		if !found {
			slog.DebugContext(ctx, "no title found, stopping", slog.String("dir", current))
			break
		}

		if name == current {
			continue
		}

		from := filepath.Join(dir, current)
		to := filepath.Join(dir, name)

		if exists, err := afero.Exists(f.fs, to); err != nil {
			return renames, errors.WithStack(err)
		} else if exists {
			slog.WarnContext(ctx, "target directory already exists, skipping", slog.String("from", current), slog.String("to", name))
			continue
		}

		if err := f.fs.Rename(from, to); err != nil {
			return renames, errors.Wrapf(err, "could not rename '%s'", from)
		}

		slog.DebugContext(ctx, "renamed documentation directory", slog.String("from", current), slog.String("to", name))

		renames = append(renames, Rename{From: current, To: name})
	}

	return renames, nil
}

func (f *Fixer) readTitle(path string) (string, bool, error) {
	file, err := f.fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}

		return "", false, errors.WithStack(err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("could not close index file", slog.String("path", path), slogx.Error(errors.WithStack(err)))
		}
	}()

	title, found, err := Title(file)
	if err != nil {
		return "", false, errors.Wrapf(err, "could not parse '%s'", path)
	}

	if !found {
		return "", false, nil
	}

	name := FormatFilename(title)
	if name == "" {
		return "", false, nil
	}

	return name, true, nil
}

func NewFixer(fs afero.Fs) *Fixer {
	return &Fixer{
		fs: fs,
	}
}
