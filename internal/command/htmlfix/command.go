package htmlfix

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/bornholm/nokdoc/internal/command/common"
	"github.com/bornholm/nokdoc/internal/config"
	"github.com/bornholm/nokdoc/internal/filesystem"
	"github.com/bornholm/nokdoc/internal/htmlfix"
	"github.com/bornholm/nokdoc/internal/scraper"
	"github.com/bornholm/nokdoc/internal/scraper/surf"
	"github.com/bornholm/nokdoc/internal/util"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	flagPath    = "path"
	flagScraper = "scraper"
)

func Command() *cli.Command {
	flags := common.WithOutputFlag(
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    flagPath,
			Aliases: []string{"p"},
			Value:   ".",
			Usage:   "Zip archive, directory of unpacked documentation folders, or url of an archive",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  flagScraper,
			Value: "standard",
			Usage: "Client used to fetch remote archives (available: 'standard', 'surf')",
		}),
	)

	return &cli.Command{
		Name:   "htmlfix",
		Usage:  "Rename unpacked HTML documentation folders from their document id to their title",
		Flags:  flags,
		Before: common.LoadConfig(flags),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context
			location := cCtx.String(flagPath)

			if !isRemote(location) {
				fs := filesystem.NewLogger(ctx, afero.NewOsFs(), slog.LevelDebug)

				renames, err := htmlfix.NewFixer(fs).Fix(ctx, location)
				if err != nil {
					return errors.WithStack(err)
				}

				slog.InfoContext(ctx, "documentation folders renamed", slog.String("path", location), slog.Int("renamed", len(renames)))

				return nil
			}

			conf, err := common.GetConfig()
			if err != nil {
				return errors.WithStack(err)
			}

			s, err := getScraper(cCtx.String(flagScraper), conf)
			if err != nil {
				return errors.WithStack(err)
			}

			output, err := common.GetOutputBackend(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			if err := fixRemote(ctx, s, output, location); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

func isRemote(location string) bool {
	u, err := url.Parse(location)
	if err != nil {
		return false
	}

	return u.Scheme == "http" || u.Scheme == "https"
}

// fixRemote downloads the archive found at location, fixes it and publishes
// it on the output destination under its original name.
func fixRemote(ctx context.Context, s scraper.Scraper, output filesystem.Backend, location string) error {
	u, err := url.Parse(location)
	if err != nil {
		return errors.WithStack(err)
	}

	name := path.Base(u.Path)
	if name == "" || name == "/" || name == "." {
		name = "documentation.zip"
	}

	dir, err := util.MkdirTemp("htmlfix_")
	if err != nil {
		return errors.WithStack(err)
	}

	defer os.RemoveAll(dir)

	archive := filepath.Join(dir, name)

	if err := download(ctx, s, location, archive); err != nil {
		return errors.Wrapf(err, "could not download '%s'", location)
	}

	osFs := afero.NewOsFs()

	renames, err := htmlfix.NewFixer(osFs).FixArchive(ctx, archive)
	if err != nil {
		return errors.WithStack(err)
	}

	err = filesystem.Publish(ctx, output, name, func(w io.Writer) error {
		file, err := osFs.Open(archive)
		if err != nil {
			return errors.WithStack(err)
		}

		defer file.Close()

		if _, err := io.Copy(w, file); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	slog.InfoContext(ctx, "fixed archive published", slog.String("file", name), slog.Int("renamed", len(renames)))

	return nil
}

func download(ctx context.Context, s scraper.Scraper, location string, filename string) error {
	body, err := s.Get(ctx, location)
	if err != nil {
		return errors.WithStack(err)
	}

	defer body.Close()

	file, err := os.Create(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	defer file.Close()

	if _, err := io.Copy(file, body); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func getScraper(scraperType string, conf *config.Config) (scraper.Scraper, error) {
	switch scraperType {
	case "surf":
		return surf.NewScraper(
			surf.WithProxy(conf.Client.Proxy),
			surf.WithTimeout(conf.Client.Timeout),
		), nil
	case "standard":
		return scraper.NewHTTPScraper(&http.Client{
			Timeout: conf.Client.Timeout,
		}), nil
	default:
		return nil, errors.Errorf("unknown scraper type '%s'", scraperType)
	}
}
