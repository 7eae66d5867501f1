package backend

import (
	"net/url"
	"sort"

	"github.com/bornholm/nokdoc/internal/filesystem"
	"github.com/pkg/errors"
)

var backendFactories = make(map[string]BackendFactory, 0)

type BackendFactory func(url *url.URL) (filesystem.Backend, error)

func RegisterBackendFactory(scheme string, factory BackendFactory) {
	backendFactories[scheme] = factory
}

// Schemes returns the registered destination schemes, sorted.
func Schemes() []string {
	schemes := make([]string, 0, len(backendFactories))
	for s := range backendFactories {
		schemes = append(schemes, s)
	}
	sort.Strings(schemes)
	return schemes
}

// New returns the backend matching the scheme of the given DSN.
func New(dsn string) (filesystem.Backend, error) {
	url, err := url.Parse(dsn)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	factory, exists := backendFactories[url.Scheme]
	if !exists {
		return nil, errors.Wrapf(ErrSchemeNotRegistered, "no destination associated with scheme '%s'", url.Scheme)
	}

	backend, err := factory(url)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return backend, nil
}
