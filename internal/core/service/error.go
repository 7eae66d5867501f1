package service

import "github.com/pkg/errors"

var (
	ErrLoginRequired = errors.New("a portal login is required")
	ErrNoDocuments   = errors.New("no documents were found")
	ErrEmptyDocset   = errors.New("no document left to render")
)
