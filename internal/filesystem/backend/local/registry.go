package local

import (
	"net/url"
	"path/filepath"

	"github.com/bornholm/nokdoc/internal/filesystem"
	"github.com/bornholm/nokdoc/internal/filesystem/backend"
)

func init() {
	backend.RegisterBackendFactory("local", FromDSN)
}

// FromDSN parses local://<path>. The host part belongs to the path, so
// local://docs and local://./docs both target ./docs, and local:///srv/docs
// targets an absolute path.
func FromDSN(dsn *url.URL) (filesystem.Backend, error) {
	basePath := dsn.Host + dsn.Path
	if basePath == "" {
		basePath = "."
	}

	return New(filepath.FromSlash(basePath)), nil
}
