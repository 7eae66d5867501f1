package client

import "github.com/pkg/errors"

var (
	ErrUnexpectedStatus       = errors.New("unexpected response status")
	ErrLoginFailed            = errors.New("login failed, check login/password combination")
	ErrCollectionLinkNotFound = errors.New("collection download link not found")
	ErrCollectionNotReady     = errors.New("collection was not ready in time")
	ErrUnexpectedPayload      = errors.New("unexpected collection payload")
	ErrInvalidFileSize        = errors.New("invalid collection file size")
)
