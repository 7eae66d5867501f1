package main

import (
	"github.com/bornholm/nokdoc/internal/command"
	"github.com/bornholm/nokdoc/internal/command/auth"
	"github.com/bornholm/nokdoc/internal/command/batchgetlinks"
	"github.com/bornholm/nokdoc/internal/command/getdocs"
	"github.com/bornholm/nokdoc/internal/command/getlinks"
	"github.com/bornholm/nokdoc/internal/command/htmlfix"
	"github.com/bornholm/nokdoc/internal/command/products"
	"github.com/bornholm/nokdoc/internal/command/showrels"
	"github.com/bornholm/nokdoc/internal/command/update"
)

func main() {
	command.Main(
		"nokdoc", "a documentation portal client",
		products.Command(),
		showrels.Command(),
		getlinks.Command(),
		getdocs.Command(),
		batchgetlinks.Command(),
		htmlfix.Command(),
		auth.LoginCommand(),
		auth.LogoutCommand(),
		update.Command(),
	)
}
