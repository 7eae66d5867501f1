package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/nokdoc/internal/catalog"
	"github.com/bornholm/nokdoc/internal/core/port"
	"github.com/bornholm/nokdoc/internal/docset"
	"github.com/bornholm/nokdoc/internal/metrics"
	"github.com/bornholm/nokdoc/pkg/client"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

type CollectionManagerOptions struct {
	MaxAttempts      int
	Interval         time.Duration
	ProgressInterval time.Duration
	Now              func() time.Time
}

type CollectionManagerOptionFunc func(opts *CollectionManagerOptions)

func WithCollectionManagerPolling(maxAttempts int, interval time.Duration) CollectionManagerOptionFunc {
	return func(opts *CollectionManagerOptions) {
		opts.MaxAttempts = maxAttempts
		opts.Interval = interval
	}
}

func WithCollectionManagerProgressInterval(interval time.Duration) CollectionManagerOptionFunc {
	return func(opts *CollectionManagerOptions) {
		opts.ProgressInterval = interval
	}
}

func WithCollectionManagerClock(now func() time.Time) CollectionManagerOptionFunc {
	return func(opts *CollectionManagerOptions) {
		opts.Now = now
	}
}

func NewCollectionManagerOptions(funcs ...CollectionManagerOptionFunc) *CollectionManagerOptions {
	opts := &CollectionManagerOptions{
		MaxAttempts:      30,
		Interval:         5 * time.Second,
		ProgressInterval: 2 * time.Second,
		Now:              time.Now,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

type CollectionManager struct {
	portal           port.Portal
	maxAttempts      int
	interval         time.Duration
	progressInterval time.Duration
	now              func() time.Time
}

type CollectionQuery struct {
	Product string
	Release string
	Format  string
}

// Prepared is a collection built by the portal, ready to be downloaded.
type Prepared struct {
	Collection *client.Collection
	Product    string
	// Filename is the name the archive is published under
	Filename string
	// Size is the archive size announced by the portal, zero when unknown
	Size int64
}

// Prepare asks the portal to build the documentation collection of a
// product release.
func (m *CollectionManager) Prepare(ctx context.Context, query CollectionQuery) (*Prepared, error) {
	if !m.portal.Authenticated() {
		return nil, errors.Wrap(ErrLoginRequired, "collections")
	}

	product, err := catalog.Lookup(query.Product)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	format, err := catalog.Format(query.Format)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	collection, err := m.portal.CreateCollection(
		ctx, product.EntryIDs,
		client.WithCreateCollectionRelease(query.Release),
		client.WithCreateCollectionFormat(format),
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.PortalQueries.WithLabelValues(product.Name, metrics.RequestCollection).Inc()

	slog.InfoContext(ctx, "collection created, the download link is valid for 48 hours", slog.String("url", collection.URL))

	prepared := &Prepared{
		Collection: collection,
		Product:    product.Name,
		Filename:   docset.CollectionFilename(product.Name, query.Release, query.Format, m.now()),
	}

	size, err := m.portal.CollectionSize(ctx, m.portal.Username(), collection.Name)
	if err != nil {
		slog.WarnContext(ctx, "could not retrieve collection size", slogx.Error(err))
	} else {
		metrics.PortalQueries.WithLabelValues(product.Name, metrics.RequestCollectionSize).Inc()
		prepared.Size = size
		slog.InfoContext(ctx, "collection size", slog.String("size", humanize.Bytes(uint64(size))))
	}

	return prepared, nil
}

// Download streams the prepared collection to w, logging the progress.
func (m *CollectionManager) Download(ctx context.Context, prepared *Prepared, w io.Writer) (int64, error) {
	var lastReport time.Time

	progress := func(written int64, total int64) {
		now := m.now()
		if now.Sub(lastReport) < m.progressInterval {
			return
		}

		lastReport = now

		if total <= 0 {
			total = prepared.Size
		}

		attrs := []any{slog.String("written", humanize.Bytes(uint64(written)))}
		if total > 0 {
			attrs = append(attrs, slog.String("total", humanize.Bytes(uint64(total))))
		}

		slog.InfoContext(ctx, "downloading collection", attrs...)
	}

	written, err := m.portal.DownloadCollection(
		ctx, prepared.Collection, w,
		client.WithDownloadMaxAttempts(m.maxAttempts),
		client.WithDownloadInterval(m.interval),
		client.WithDownloadProgress(progress),
	)
	if err != nil {
		return written, errors.WithStack(err)
	}

	metrics.DownloadedBytes.WithLabelValues(prepared.Product).Add(float64(written))

	slog.InfoContext(ctx, "collection downloaded", slog.String("size", humanize.Bytes(uint64(written))))

	return written, nil
}

func NewCollectionManager(portal port.Portal, funcs ...CollectionManagerOptionFunc) *CollectionManager {
	opts := NewCollectionManagerOptions(funcs...)

	return &CollectionManager{
		portal:           portal,
		maxAttempts:      opts.MaxAttempts,
		interval:         opts.Interval,
		progressInterval: opts.ProgressInterval,
		now:              opts.Now,
	}
}
