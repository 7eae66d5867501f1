package filesystem

import (
	"context"

	"github.com/spf13/afero"
)

// Backend gives access to an output destination for the duration of fn.
// Writes made through the mounted filesystem are published once fn returns
// without error.
type Backend interface {
	Mount(ctx context.Context, fn func(ctx context.Context, fs afero.Fs) error) error
}
