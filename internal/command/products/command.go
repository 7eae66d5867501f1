package products

import (
	"fmt"
	"strings"

	"github.com/bornholm/nokdoc/internal/catalog"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "List the known products and formats",
		Action: func(cCtx *cli.Context) error {
			w := cCtx.App.Writer

			fmt.Fprintln(w, "Products:")

			for _, name := range catalog.Names() {
				product, _ := catalog.Lookup(name)

				suffix := ""
				if product.RequiresLogin() {
					suffix = " (login required)"
				}

				fmt.Fprintf(w, "  %s%s\n", name, suffix)
			}

			fmt.Fprintf(w, "\nFormats: %s\n", strings.Join(catalog.FormatNames(), ", "))

			return nil
		},
	}
}
