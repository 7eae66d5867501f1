package smb

import (
	"context"
	"io"
	"log/slog"
	"net"
	"path"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/nokdoc/internal/filesystem"
	"github.com/bornholm/nokdoc/internal/filesystem/backend/staging"
	"github.com/hirochachacha/go-smb2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

type Backend struct {
	addr     string
	basePath string
	config   *Config
}

type Config struct {
	Initiator smb2.Initiator
	ShareName string
}

// Mount implements filesystem.Backend.
func (b *Backend) Mount(ctx context.Context, fn func(ctx context.Context, fs afero.Fs) error) error {
	upload := func(ctx context.Context, obj staging.Object, r io.Reader) error {
		return b.withShare(ctx, func(share *smb2.Share) error {
			name := path.Join(b.basePath, obj.Name)

			if dir := path.Dir(name); dir != "." {
				if err := share.MkdirAll(dir, 0o755); err != nil {
					return errors.WithStack(err)
				}
			}

			file, err := share.Create(name)
			if err != nil {
				return errors.WithStack(err)
			}

			defer file.Close()

			if _, err := io.Copy(file, r); err != nil {
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

func (b *Backend) withShare(ctx context.Context, fn func(share *smb2.Share) error) error {
	var dialer net.Dialer

	conn, err := dialer.DialContext(ctx, "tcp", b.addr)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			slog.ErrorContext(ctx, "could not close smb connection", slogx.Error(errors.WithStack(err)))
		}
	}()

	smbDialer := &smb2.Dialer{
		Initiator: b.config.Initiator,
	}

	session, err := smbDialer.Dial(conn)
	if err != nil {
		return errors.WithStack(err)
	}

	session = session.WithContext(ctx)

	defer func() {
		if err := session.Logoff(); err != nil {
			var contextErr *smb2.ContextError
			if errors.As(err, &contextErr) {
				return
			}

			slog.ErrorContext(ctx, "could not logout samba session", slogx.Error(errors.WithStack(err)))
		}
	}()

	share, err := session.Mount(b.config.ShareName)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := share.Umount(); err != nil {
			slog.ErrorContext(ctx, "could not unmount samba share", slogx.Error(errors.WithStack(err)))
		}
	}()

	if err := fn(share); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func New(addr string, basePath string, config *Config) *Backend {
	return &Backend{
		addr:     addr,
		basePath: basePath,
		config:   config,
	}
}

var _ filesystem.Backend = &Backend{}
