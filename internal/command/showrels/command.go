package showrels

import (
	"fmt"

	"github.com/bornholm/nokdoc/internal/catalog"
	"github.com/bornholm/nokdoc/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	flags := common.WithProductFlags(false)

	return &cli.Command{
		Name:   "showrels",
		Usage:  "Show the available releases of a product",
		Flags:  flags,
		Before: common.LoadConfig(flags),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			product, err := catalog.Lookup(cCtx.String(common.ParamProduct))
			if err != nil {
				return errors.WithStack(err)
			}

			portal, conf, err := common.NewPortalClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			manager := common.NewDocsetManager(portal, conf)

			releases, err := manager.Releases(ctx, product.Name)
			if err != nil {
				return errors.Wrapf(err, "could not retrieve releases of '%s'", product.Name)
			}

			w := cCtx.App.Writer

			if product.Combined() {
				fmt.Fprintf(w, "Releases shared by every '%s' product:\n", product.Name)
			} else {
				fmt.Fprintf(w, "Releases of '%s':\n", product.Name)
			}

			for _, r := range releases {
				fmt.Fprintf(w, "  %s\n", r)
			}

			return nil
		},
	}
}
