package getlinks

import (
	"context"
	"io"
	"log/slog"
	"path"

	"github.com/bornholm/nokdoc/internal/command/common"
	"github.com/bornholm/nokdoc/internal/core/service"
	"github.com/bornholm/nokdoc/internal/docset"
	"github.com/bornholm/nokdoc/internal/filesystem"
	"github.com/bornholm/nokdoc/internal/metrics"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	flagSort  = "sort"
	flagTitle = "title"
)

func Command() *cli.Command {
	flags := common.WithProductFlags(true,
		common.WithOutputFlag(
			altsrc.NewStringFlag(&cli.StringFlag{
				Name:    flagSort,
				Aliases: []string{"s"},
				Value:   "title",
				Usage:   "Sort documents by 'title' or 'issue_date'",
			}),
			altsrc.NewStringFlag(&cli.StringFlag{
				Name:    flagTitle,
				Aliases: []string{"t"},
				Usage:   "Only keep the documents whose title matches the given glob pattern",
			}),
		)...,
	)

	return &cli.Command{
		Name:   "getlinks",
		Usage:  "Render the document links of a product release to an HTML page",
		Flags:  flags,
		Before: common.LoadConfig(flags),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			portal, conf, err := common.GetPortalClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			output, err := common.GetOutputBackend(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			query := service.DocsetQuery{
				Product:   cCtx.String(common.ParamProduct),
				Release:   cCtx.String(common.ParamRelease),
				Format:    cCtx.String(common.ParamFormat),
				SortBy:    cCtx.String(flagSort),
				TitleGlob: cCtx.String(flagTitle),
			}

			if _, err := Run(ctx, common.NewDocsetManager(portal, conf), output, query, ""); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

// Run builds the docset selected by query and publishes its HTML page in
// dir on the given backend. It returns the published file name.
func Run(ctx context.Context, manager *service.DocsetManager, output filesystem.Backend, query service.DocsetQuery, dir string) (string, error) {
	d, err := manager.Build(ctx, query)
	if err != nil {
		return "", errors.WithStack(err)
	}

	filename := path.Join(dir, docset.Filename(d.Product, d.Release))

	err = filesystem.Publish(ctx, output, filename, func(w io.Writer) error {
		return docset.Render(w, *d)
	})
	if err != nil {
		return "", errors.Wrapf(err, "could not publish '%s'", filename)
	}

	metrics.PublishedDocsets.Inc()

	slog.InfoContext(ctx, "docset published", slog.String("file", filename), slog.Int("documents", d.Documents.Len()))

	return filename, nil
}
