package update

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/bornholm/nokdoc/internal/build"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const repositorySlug = "bornholm/nokdoc"

func Command() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Update nokdoc to the latest release",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Only check whether a newer release exists",
			},
		},
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			if build.ShortVersion == "unknown" {
				return errors.New("development builds can not be updated")
			}

			updated, err := update(ctx, build.ShortVersion, cCtx.Bool("check"))
			if err != nil {
				return errors.WithStack(err)
			}

			if updated {
				slog.InfoContext(ctx, "restart nokdoc to use the new version")
			}

			return nil
		},
	}
}

func update(ctx context.Context, version string, checkOnly bool) (bool, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return false, errors.WithStack(err)
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Source:    source,
		Validator: &selfupdate.ChecksumValidator{UniqueFilename: "checksums.txt"},
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	})
	if err != nil {
		return false, errors.WithStack(err)
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repositorySlug))
	if err != nil {
		return false, errors.Wrap(err, "error occurred while detecting version")
	}
	if !found {
		return false, errors.Errorf("latest version for %s/%s could not be found from github repository", runtime.GOOS, runtime.GOARCH)
	}

	slog.InfoContext(ctx, "latest stable version", slog.String("version", latest.Version()))

	if latest.LessOrEqual(version) {
		slog.InfoContext(ctx, "current version is the latest", slog.String("version", version))
		return false, nil
	}

	if checkOnly {
		slog.InfoContext(ctx, "a newer version is available", slog.String("current", version), slog.String("latest", latest.Version()))
		return false, nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return false, errors.New("could not locate executable path")
	}

	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return false, errors.Wrap(err, "error occurred while updating binary")
	}

	slog.InfoContext(ctx, "successfully updated to version", slog.String("version", latest.Version()))

	return true, nil
}
