package getdocs

import (
	"io"
	"log/slog"

	"github.com/bornholm/nokdoc/internal/command/common"
	"github.com/bornholm/nokdoc/internal/core/service"
	"github.com/bornholm/nokdoc/internal/filesystem"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	flagMaxAttempts = "max-attempts"
	flagInterval    = "interval"
)

func Command() *cli.Command {
	flags := common.WithProductFlags(true,
		common.WithOutputFlag(
			altsrc.NewIntFlag(&cli.IntFlag{
				Name:  flagMaxAttempts,
				Value: 30,
				Usage: "Number of checks of the collection readiness before giving up",
			}),
			altsrc.NewDurationFlag(&cli.DurationFlag{
				Name:  flagInterval,
				Value: service.NewCollectionManagerOptions().Interval,
				Usage: "Delay between two checks of the collection readiness",
			}),
		)...,
	)

	return &cli.Command{
		Name:   "getdocs",
		Usage:  "Download the documentation collection of a product release as a zip archive",
		Flags:  flags,
		Before: common.LoadConfig(flags),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			portal, _, err := common.GetPortalClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			output, err := common.GetOutputBackend(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			manager := service.NewCollectionManager(
				portal,
				service.WithCollectionManagerPolling(cCtx.Int(flagMaxAttempts), cCtx.Duration(flagInterval)),
			)

			prepared, err := manager.Prepare(ctx, service.CollectionQuery{
				Product: cCtx.String(common.ParamProduct),
				Release: cCtx.String(common.ParamRelease),
				Format:  cCtx.String(common.ParamFormat),
			})
			if err != nil {
				return errors.WithStack(err)
			}

			err = filesystem.Publish(ctx, output, prepared.Filename, func(w io.Writer) error {
				if _, err := manager.Download(ctx, prepared, w); err != nil {
					return errors.WithStack(err)
				}

				return nil
			})
			if err != nil {
				return errors.Wrapf(err, "could not publish '%s'", prepared.Filename)
			}

			slog.InfoContext(ctx, "collection published", slog.String("file", prepared.Filename))

			return nil
		},
	}
}
