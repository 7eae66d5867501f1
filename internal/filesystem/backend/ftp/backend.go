package ftp

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/nokdoc/internal/filesystem"
	"github.com/bornholm/nokdoc/internal/filesystem/backend/staging"
	"github.com/jlaffaye/ftp"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

type Backend struct {
	addr     string
	basePath string
	username string
	password string
	options  []ftp.DialOption
}

// Mount implements filesystem.Backend.
func (b *Backend) Mount(ctx context.Context, fn func(ctx context.Context, fs afero.Fs) error) error {
	upload := func(ctx context.Context, obj staging.Object, r io.Reader) error {
		return b.withConn(ctx, func(conn *ftp.ServerConn) error {
			name := path.Join(b.basePath, obj.Name)

			if err := makeDirAll(conn, path.Dir(name)); err != nil {
				return errors.WithStack(err)
			}

			if err := conn.Stor(name, r); err != nil {
				return errors.WithStack(err)
			}

			return nil
		})
	}

	if err := staging.Mount(ctx, staging.UploaderFunc(upload), fn); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (b *Backend) withConn(ctx context.Context, fn func(*ftp.ServerConn) error) error {
	options := append([]ftp.DialOption{
		ftp.DialWithContext(ctx),
	}, b.options...)

	conn, err := ftp.Dial(b.addr, options...)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := conn.Quit(); err != nil {
			slog.ErrorContext(ctx, "could not quit ftp server", slogx.Error(errors.WithStack(err)))
		}
	}()

	if b.username != "" && b.password != "" {
		if err := conn.Login(b.username, b.password); err != nil {
			return errors.WithStack(err)
		}

		defer func() {
			if err := conn.Logout(); err != nil && !isNotImplementedErr(err) && !isBadCommand(err) {
				slog.ErrorContext(ctx, "could not logout from ftp server", slogx.Error(errors.WithStack(err)))
			}
		}()
	}

	if err := fn(conn); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// makeDirAll creates dir and its parents, ignoring already existing ones.
func makeDirAll(conn *ftp.ServerConn, dir string) error {
	if dir == "." || dir == "/" || dir == "" {
		return nil
	}

	current := ""
	if strings.HasPrefix(dir, "/") {
		current = "/"
	}

	for _, segment := range strings.Split(strings.Trim(dir, "/"), "/") {
		current = path.Join(current, segment)

		if err := conn.MakeDir(current); err != nil && !isFileUnavailableErr(err) {
			return errors.Wrapf(err, "could not create directory '%s'", current)
		}
	}

	return nil
}

func New(addr string, basePath string, username, password string, options ...ftp.DialOption) *Backend {
	return &Backend{
		addr:     addr,
		basePath: basePath,
		username: username,
		password: password,
		options:  options,
	}
}

var _ filesystem.Backend = &Backend{}
