package webdav

import (
	"context"
	"io"
	"net/http"
	"path"
	"time"

	"github.com/bornholm/nokdoc/internal/filesystem"
	"github.com/bornholm/nokdoc/internal/filesystem/backend/staging"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/studio-b12/gowebdav"
)

// Backend publishes files on a WebDAV share. Files are staged locally and
// uploaded once the mount callback succeeds.
type Backend struct {
	url    string
	config *Config
}

type Config struct {
	Username string
	Password string
	Timeout  time.Duration
}

// Mount implements filesystem.Backend.
func (b *Backend) Mount(ctx context.Context, fn func(ctx context.Context, fs afero.Fs) error) error {
	client := b.newClient()

	uploader := staging.UploaderFunc(func(ctx context.Context, obj staging.Object, r io.Reader) error {
		if dir := path.Dir(obj.Name); dir != "." {
			if err := client.MkdirAll(dir, 0o755); err != nil {
				return errors.WithStack(err)
			}
		}

		if err := client.WriteStream(obj.Name, r, 0o644); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})

	if err := staging.Mount(ctx, uploader, fn); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (b *Backend) newClient() *gowebdav.Client {
	authorizer := gowebdav.NewAutoAuth(b.config.Username, b.config.Password)
	client := gowebdav.NewAuthClient(b.url, authorizer)

	client.SetTimeout(b.config.Timeout)
	client.SetTransport(http.DefaultTransport)

	return client
}

func New(url string, config *Config) *Backend {
	return &Backend{
		url:    url,
		config: config,
	}
}

var _ filesystem.Backend = &Backend{}
