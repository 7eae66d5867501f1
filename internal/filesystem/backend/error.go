package backend

import "github.com/pkg/errors"

var (
	ErrSchemeNotRegistered = errors.New("scheme was not registered")
	ErrMissingParameter    = errors.New("missing url parameter")
)
