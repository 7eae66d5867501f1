package client

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type QueryDocumentsOptions struct {
	Release string
	// Format is the portal format name, empty for every format
	Format string
	// SortBy is the portal sort value
	SortBy string
}

type QueryDocumentsOptionFunc func(opts *QueryDocumentsOptions)

func WithQueryDocumentsRelease(release string) QueryDocumentsOptionFunc {
	return func(opts *QueryDocumentsOptions) {
		opts.Release = release
	}
}

func WithQueryDocumentsFormat(format string) QueryDocumentsOptionFunc {
	return func(opts *QueryDocumentsOptions) {
		opts.Format = format
	}
}

func WithQueryDocumentsSortBy(sortBy string) QueryDocumentsOptionFunc {
	return func(opts *QueryDocumentsOptions) {
		opts.SortBy = sortBy
	}
}

func NewQueryDocumentsOptions(funcs ...QueryDocumentsOptionFunc) *QueryDocumentsOptions {
	opts := &QueryDocumentsOptions{
		SortBy: "Title, A-Z",
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// QueryDocuments returns the raw document list response of an entry. The
// text is left untouched so the caller can hand it to the docdata parser.
func (c *Client) QueryDocuments(ctx context.Context, entryID string, funcs ...QueryDocumentsOptionFunc) (string, error) {
	opts := NewQueryDocumentsOptions(funcs...)

	query := url.Values{}
	query.Set("entry_id", entryID)
	query.Set("release", strings.ToUpper(opts.Release))
	query.Set("format", opts.Format)
	query.Set("sortby", opts.SortBy)

	cacheKey := strconv.FormatBool(c.Authenticated()) + "|" + query.Encode()

	if c.cache != nil {
		if text, exists := c.cache.Get(cacheKey); exists {
			slog.DebugContext(ctx, "document list served from cache", slog.String("entry_id", entryID))
			return text, nil
		}
	}

	text, err := c.textRequest(ctx, http.MethodGet, c.endpoint(documentListPath, query), nil, nil)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if c.cache != nil {
		c.cache.Add(cacheKey, text)
	}

	return text, nil
}
