package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/nokdoc/internal/catalog"
	"github.com/bornholm/nokdoc/internal/core/port"
	"github.com/bornholm/nokdoc/internal/docdata"
	"github.com/bornholm/nokdoc/internal/docset"
	"github.com/bornholm/nokdoc/internal/metrics"
	"github.com/bornholm/nokdoc/pkg/client"
	"github.com/pkg/errors"
)

type DocsetManagerOptions struct {
	DocHost           string
	SynthesizedFamily string
	Now               func() time.Time
}

type DocsetManagerOptionFunc func(opts *DocsetManagerOptions)

func WithDocsetManagerDocHost(host string) DocsetManagerOptionFunc {
	return func(opts *DocsetManagerOptions) {
		opts.DocHost = host
	}
}

func WithDocsetManagerSynthesizedFamily(family string) DocsetManagerOptionFunc {
	return func(opts *DocsetManagerOptions) {
		opts.SynthesizedFamily = family
	}
}

func WithDocsetManagerClock(now func() time.Time) DocsetManagerOptionFunc {
	return func(opts *DocsetManagerOptions) {
		opts.Now = now
	}
}

func NewDocsetManagerOptions(funcs ...DocsetManagerOptionFunc) *DocsetManagerOptions {
	opts := &DocsetManagerOptions{
		DocHost:           docdata.DefaultDocHost,
		SynthesizedFamily: docdata.DefaultSynthesizedFamily,
		Now:               time.Now,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

type DocsetManager struct {
	portal            port.Portal
	docHost           string
	synthesizedFamily string
	now               func() time.Time
}

// DocsetQuery selects the documents of a docset. Format and SortBy are the
// short names known by the catalog.
type DocsetQuery struct {
	Product   string
	Release   string
	Format    string
	SortBy    string
	TitleGlob string
}

// Releases lists the releases of a product. Combined products only expose
// the releases shared by all their entries.
func (m *DocsetManager) Releases(ctx context.Context, productName string) ([]string, error) {
	product, err := catalog.Lookup(productName)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.PortalQueries.WithLabelValues(product.Name, metrics.RequestReleases).Add(float64(len(product.EntryIDs)))

	releases, err := m.portal.CommonReleases(ctx, product.EntryIDs...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return releases, nil
}

// Build queries the portal and returns the parsed docset.
func (m *DocsetManager) Build(ctx context.Context, query DocsetQuery) (*docset.Docset, error) {
	product, err := catalog.Lookup(query.Product)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	authenticated := m.portal.Authenticated()

	if product.RequiresLogin() && !authenticated {
		return nil, errors.Wrapf(ErrLoginRequired, "'%s' documentation", product.Name)
	}

	format, err := catalog.Format(query.Format)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sortBy, err := catalog.Sort(query.SortBy)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	decoded := make([]*docdata.QueryResponse, 0, len(product.EntryIDs))

	for _, entryID := range product.EntryIDs {
		slog.DebugContext(ctx, "querying document list", slog.String("product", product.Name), slog.String("entry_id", entryID), slog.String("release", query.Release))

		raw, err := m.portal.QueryDocuments(
			ctx, entryID,
			client.WithQueryDocumentsRelease(query.Release),
			client.WithQueryDocumentsFormat(format),
			client.WithQueryDocumentsSortBy(sortBy),
		)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		metrics.PortalQueries.WithLabelValues(product.Name, metrics.RequestDocuments).Inc()

		res, err := docdata.DecodeQueryResponse(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "could not decode document list of entry '%s'", entryID)
		}

		decoded = append(decoded, res)
	}

	if !docdata.HasDocuments(decoded...) {
		return nil, errors.Wrapf(ErrNoDocuments, "product '%s', release '%s'", product.Name, query.Release)
	}

	set, err := docdata.ParseDecoded(
		decoded,
		docdata.WithAuthenticated(authenticated),
		docdata.WithProductFamily(product.Name),
		docdata.WithDocHost(m.docHost),
		docdata.WithSynthesizedFamily(m.synthesizedFamily),
		docdata.WithNoticeFunc(m.noticeLogger(ctx, product.Name, query.Release)),
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if query.TitleGlob != "" {
		match, err := docset.TitleFilter(query.TitleGlob)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		set = set.Filter(match)
	}

	if set.Len() == 0 {
		return nil, errors.Wrapf(ErrEmptyDocset, "product '%s', release '%s'", product.Name, query.Release)
	}

	metrics.ParsedDocuments.WithLabelValues(product.Name, query.Release).Add(float64(set.Len()))

	return &docset.Docset{
		Product:     product.Name,
		Release:     query.Release,
		GeneratedAt: m.now(),
		Documents:   set,
	}, nil
}

func (m *DocsetManager) noticeLogger(ctx context.Context, product string, release string) docdata.NoticeFunc {
	return func(notice docdata.Notice) {
		switch notice.Kind {
		case docdata.NoticeRestrictedDocuments:
			slog.WarnContext(ctx, "some documents require a login and will be skipped, use --login to get them", slog.String("product", product))
		case docdata.NoticeRestrictedSkipped:
			metrics.RestrictedSkipped.WithLabelValues(product, release).Inc()
			slog.InfoContext(ctx, "skipped restricted document", slog.String("title", notice.Title))
		}
	}
}

func NewDocsetManager(portal port.Portal, funcs ...DocsetManagerOptionFunc) *DocsetManager {
	opts := NewDocsetManagerOptions(funcs...)

	return &DocsetManager{
		portal:            portal,
		docHost:           opts.DocHost,
		synthesizedFamily: opts.SynthesizedFamily,
		now:               opts.Now,
	}
}
