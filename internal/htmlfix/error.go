package htmlfix

import "github.com/pkg/errors"

var (
	ErrUnsupportedInput = errors.New("unsupported input")
	ErrUnsafeEntry      = errors.New("archive entry escapes destination")
)
