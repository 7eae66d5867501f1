package command

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/nokdoc/internal/build"
	"github.com/bornholm/nokdoc/internal/command/common"
	"github.com/bornholm/nokdoc/internal/config"
	"github.com/bornholm/nokdoc/internal/util"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Main(name string, usage string, commands ...*cli.Command) {
	sentryEnabled := false

	app := &cli.App{
		Name:     name,
		Usage:    usage,
		Commands: commands,
		Version:  build.LongVersion,
		Before: func(ctx *cli.Context) error {
			workdir := ctx.String("workdir")
			// Switch to new working directory if defined
			if workdir != "" {
				if err := os.Chdir(workdir); err != nil {
					return errors.Wrap(err, "could not change working directory")
				}
			}

			logLevel := ctx.String("log-level")
			slogLevel := slog.LevelWarn

			switch logLevel {
			case "debug":
				slogLevel = slog.LevelDebug
			case "info":
				slogLevel = slog.LevelInfo
			case "warn":
				slogLevel = slog.LevelWarn
			case "error":
				slogLevel = slog.LevelError
			}

			logger := slog.New(slogx.ContextHandler{
				Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level:     slog.Level(slogLevel),
					AddSource: true,
				}),
			})

			slog.SetDefault(logger)

			conf, err := config.Parse()
			if err != nil {
				return errors.WithStack(err)
			}

			if conf.Sentry.DSN != "" {
				err := sentry.Init(sentry.ClientOptions{
					Dsn:         conf.Sentry.DSN,
					Environment: conf.Sentry.Environment,
					Release:     build.ShortVersion,
				})
				if err != nil {
					return errors.Wrap(err, "could not initialize sentry")
				}

				sentryEnabled = true
			}

			return nil
		},
		After: func(ctx *cli.Context) error {
			if err := util.CleanupTempDir(); err != nil {
				slog.WarnContext(ctx.Context, "could not remove temporary directory", slogx.Error(err))
			}

			return nil
		},
		Flags: append(common.GlobalFlags(),
			&cli.StringFlag{
				Name:    "config",
				EnvVars: []string{"NOKDOC_CLI_CONFIG"},
				Aliases: []string{"c"},
				Usage:   "configuration file to load the command flags from",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Value:   false,
				EnvVars: []string{"NOKDOC_CLI_DEBUG"},
				Usage:   "Toggle debug mode",
			},
			&cli.StringFlag{
				Name:    "workdir",
				Value:   "",
				EnvVars: []string{"NOKDOC_CLI_WORKDIR"},
				Usage:   "The working directory",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"NOKDOC_CLI_LOG_LEVEL"},
				Usage:   "Set logging level",
				Value:   "info",
			},
		),
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil {
			return
		}

		if sentryEnabled {
			sentry.CaptureException(err)
			sentry.Flush(2 * time.Second)
		}

		debug := ctx.Bool("debug")

		if !debug {
			slog.ErrorContext(ctx.Context, err.Error())
		} else {
			slog.ErrorContext(ctx.Context, fmt.Sprintf("%+v", err))
		}
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
