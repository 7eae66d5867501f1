package batchgetlinks

import (
	"context"
	"log/slog"
	"path"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/nokdoc/internal/command/common"
	"github.com/bornholm/nokdoc/internal/command/getlinks"
	"github.com/bornholm/nokdoc/internal/core/service"
	"github.com/bornholm/nokdoc/internal/filesystem"
	"github.com/bornholm/nokdoc/internal/metrics"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	flagMetricsFile = "metrics-file"
	flagDir         = "dir"
)

var ErrBatchFailed = errors.New("some docsets could not be published")

func Command() *cli.Command {
	flags := common.WithOutputFlag(
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  flagDir,
			Value: "docs",
			Usage: "Directory of the output destination receiving one sub directory per product",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  flagMetricsFile,
			Usage: "Write the run counters to the given file in the Prometheus text format",
		}),
	)

	return &cli.Command{
		Name:      "batchgetlinks",
		Usage:     "Render the document links of the products and releases listed in a YAML manifest",
		ArgsUsage: "<manifest>",
		Flags:     flags,
		Before:    common.LoadConfig(flags),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			location := cCtx.Args().First()
			if location == "" {
				return errors.New("missing manifest argument, use '-' to read it from stdin")
			}

			entries, err := readManifest(ctx, location)
			if err != nil {
				return errors.WithStack(err)
			}

			portal, conf, err := common.GetPortalClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			output, err := common.GetOutputBackend(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			manager := common.NewDocsetManager(portal, conf)

			runErr := Run(ctx, manager, output, entries, cCtx.String(flagDir))

			if metricsFile := cCtx.String(flagMetricsFile); metricsFile != "" {
				if err := metrics.WriteFile(metricsFile); err != nil {
					slog.ErrorContext(ctx, "could not write metrics file", slog.String("file", metricsFile), slogx.Error(err))
				}
			}

			if runErr != nil {
				return errors.WithStack(runErr)
			}

			return nil
		},
	}
}

func readManifest(ctx context.Context, location string) ([]Entry, error) {
	reader, _, err := common.Resolve(ctx, location)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer reader.Close()

	entries, err := ParseManifest(reader)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse manifest '%s'", location)
	}

	return entries, nil
}

// Run publishes the docset of every manifest entry release in
// <dir>/<product>. A failing docset does not stop the batch.
func Run(ctx context.Context, manager *service.DocsetManager, output filesystem.Backend, entries []Entry, dir string) error {
	total, failed := 0, 0

	for _, entry := range entries {
		for _, release := range entry.Releases {
			total++

			query := service.DocsetQuery{
				Product: entry.Product,
				Release: release,
			}

			if _, err := getlinks.Run(ctx, manager, output, query, path.Join(dir, entry.Product)); err != nil {
				failed++
				slog.ErrorContext(ctx, "could not publish docset", slog.String("product", entry.Product), slog.String("release", release), slogx.Error(err))
			}
		}
	}

	slog.InfoContext(ctx, "batch done", slog.Int("total", total), slog.Int("failed", failed))

	if failed > 0 {
		return errors.Wrapf(ErrBatchFailed, "%d of %d", failed, total)
	}

	return nil
}
