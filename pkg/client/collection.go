package client

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

const (
	createCollectionPath = "/aces/cgi-bin/create_col.pl"
	collectionSizePath   = "/aces/cgi-bin/chk_col_done.pl"

	collectionContentType = "archive/zip"
	// The download link sits at the bottom of the creation page
	collectionLinkScanLines = 100
)

var (
	collectionLinkPattern = regexp.MustCompile(`https?://[^\s'"<>]+/aces/cgi-bin/down_col\.pl\?[^\s'"<>]*?\.zip`)
	nonDigitPattern       = regexp.MustCompile(`\D`)
)

// Collection is a documentation archive prepared by the portal. Its link
// stays valid for 48 hours.
type Collection struct {
	URL  string
	Name string
}

type CreateCollectionOptions struct {
	Release string
	Format  string
}

type CreateCollectionOptionFunc func(opts *CreateCollectionOptions)

func WithCreateCollectionRelease(release string) CreateCollectionOptionFunc {
	return func(opts *CreateCollectionOptions) {
		opts.Release = release
	}
}

func WithCreateCollectionFormat(format string) CreateCollectionOptionFunc {
	return func(opts *CreateCollectionOptions) {
		opts.Format = format
	}
}

func NewCreateCollectionOptions(funcs ...CreateCollectionOptionFunc) *CreateCollectionOptions {
	opts := &CreateCollectionOptions{}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// CreateCollection asks the portal to package the documentation of the given
// entries and returns the archive link.
func (c *Client) CreateCollection(ctx context.Context, entryIDs []string, funcs ...CreateCollectionOptionFunc) (*Collection, error) {
	opts := NewCreateCollectionOptions(funcs...)

	form := url.Values{}
	for _, id := range entryIDs {
		form.Add("entry_id", id)
	}
	form.Set("release", strings.ToUpper(opts.Release))
	form.Set("format", opts.Format)
	form.Set("create_col_flg", "1")

	text, err := c.formRequest(ctx, c.endpoint(createCollectionPath, nil), form)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	collection, err := findCollectionLink(text)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return collection, nil
}

func findCollectionLink(page string) (*Collection, error) {
	lines := strings.Split(page, "\n")
	if len(lines) > collectionLinkScanLines {
		lines = lines[len(lines)-collectionLinkScanLines:]
	}

	for _, l := range lines {
		link := collectionLinkPattern.FindString(l)
		if link == "" {
			continue
		}

		parts := strings.Split(link, "=")

		return &Collection{
			URL:  link,
			Name: strings.TrimSuffix(parts[len(parts)-1], ".zip"),
		}, nil
	}

	return nil, errors.WithStack(ErrCollectionLinkNotFound)
}

type collectionSizeResponse struct {
	FileSize string `json:"filesize"`
}

// CollectionSize returns the size in bytes of a prepared collection.
func (c *Client) CollectionSize(ctx context.Context, username string, name string) (int64, error) {
	query := url.Values{}
	query.Set("remote_user", username)
	query.Set("col_name", name)

	var res collectionSizeResponse
	if err := c.jsonRequest(ctx, http.MethodGet, c.endpoint(collectionSizePath, query), nil, nil, &res); err != nil {
		return 0, errors.WithStack(err)
	}

	// The size is formatted like "(56,950,085 bytes)"
	digits := nonDigitPattern.ReplaceAllString(res.FileSize, "")
	if digits == "" {
		return 0, errors.Wrapf(ErrInvalidFileSize, "'%s'", res.FileSize)
	}

	size, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidFileSize, "'%s': %s", res.FileSize, err.Error())
	}

	return size, nil
}

type ProgressFunc func(written int64, total int64)

type DownloadCollectionOptions struct {
	MaxAttempts int
	Interval    time.Duration
	// Username enables the size lookup used for progress reporting
	Username     string
	ProgressFunc ProgressFunc
}

type DownloadCollectionOptionFunc func(opts *DownloadCollectionOptions)

func WithDownloadMaxAttempts(attempts int) DownloadCollectionOptionFunc {
	return func(opts *DownloadCollectionOptions) {
		opts.MaxAttempts = attempts
	}
}

func WithDownloadInterval(interval time.Duration) DownloadCollectionOptionFunc {
	return func(opts *DownloadCollectionOptions) {
		opts.Interval = interval
	}
}

func WithDownloadUsername(username string) DownloadCollectionOptionFunc {
	return func(opts *DownloadCollectionOptions) {
		opts.Username = username
	}
}

func WithDownloadProgress(fn ProgressFunc) DownloadCollectionOptionFunc {
	return func(opts *DownloadCollectionOptions) {
		opts.ProgressFunc = fn
	}
}

func NewDownloadCollectionOptions(funcs ...DownloadCollectionOptionFunc) *DownloadCollectionOptions {
	opts := &DownloadCollectionOptions{
		MaxAttempts:  30,
		Interval:     5 * time.Second,
		ProgressFunc: func(int64, int64) {},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	if opts.ProgressFunc == nil {
		opts.ProgressFunc = func(int64, int64) {}
	}
	return opts
}

// DownloadCollection waits for the portal to finish packaging the collection
// and streams the archive to w. It returns the number of bytes written.
func (c *Client) DownloadCollection(ctx context.Context, collection *Collection, w io.Writer, funcs ...DownloadCollectionOptionFunc) (int64, error) {
	opts := NewDownloadCollectionOptions(funcs...)

	u, err := url.Parse(collection.URL)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		slog.InfoContext(ctx, "waiting for the portal to prepare the archive", slog.Int("attempt", attempt), slog.Int("max_attempts", opts.MaxAttempts))

		res, err := c.do(ctx, http.MethodGet, u, nil, nil)
		if err != nil {
			return 0, errors.WithStack(err)
		}

		if !isCollectionContentType(res.Header.Get("Content-Type")) {
			io.Copy(io.Discard, res.Body)
			res.Body.Close()

			if attempt == opts.MaxAttempts {
				break
			}

			select {
			case <-ctx.Done():
				return 0, errors.WithStack(ctx.Err())
			case <-time.After(opts.Interval):
			}

			continue
		}

		written, err := c.copyCollection(ctx, collection, res, w, opts)
		res.Body.Close()
		if err != nil {
			return written, errors.WithStack(err)
		}

		return written, nil
	}

	return 0, errors.Wrapf(ErrCollectionNotReady, "after %d attempts", opts.MaxAttempts)
}

func (c *Client) copyCollection(ctx context.Context, collection *Collection, res *http.Response, w io.Writer, opts *DownloadCollectionOptions) (int64, error) {
	total := res.ContentLength

	if opts.Username != "" {
		size, err := c.CollectionSize(ctx, opts.Username, collection.Name)
		if err != nil {
			slog.WarnContext(ctx, "could not retrieve collection size", slog.Any("error", err))
		} else {
			total = size
		}
	}

	reader := bufio.NewReaderSize(res.Body, 4096)

	head, err := reader.Peek(3072)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, errors.WithStack(err)
	}

	if !isZip(mimetype.Detect(head)) {
		return 0, errors.Wrapf(ErrUnexpectedPayload, "detected '%s'", mimetype.Detect(head).String())
	}

	counter := &progressWriter{
		writer: w,
		total:  total,
		fn:     opts.ProgressFunc,
	}

	written, err := io.Copy(counter, reader)
	if err != nil {
		return written, errors.WithStack(err)
	}

	return written, nil
}

func isCollectionContentType(contentType string) bool {
	contentType, _, _ = strings.Cut(contentType, ";")
	return strings.EqualFold(strings.TrimSpace(contentType), collectionContentType)
}

func isZip(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("application/zip") {
			return true
		}
	}
	return false
}

type progressWriter struct {
	writer  io.Writer
	written int64
	total   int64
	fn      ProgressFunc
}

func (w *progressWriter) Write(p []byte) (int, error) {
	n, err := w.writer.Write(p)
	w.written += int64(n)
	w.fn(w.written, w.total)
	return n, err
}
