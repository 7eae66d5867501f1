package common

import (
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	ParamLogin   = "login"
	ParamProxy   = "proxy"
	ParamOutput  = "output"
	ParamConfig  = "config"
	ParamProduct = "product"
	ParamRelease = "release"
	ParamFormat  = "format"
)

// GlobalFlags are set before the command name, as in
// "nokdoc -l jdoe -p http://proxy:3128 getlinks -p nuage".
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    ParamLogin,
			Aliases: []string{"l"},
			EnvVars: []string{"NOKDOC_LOGIN"},
			Usage:   "Portal login giving access to restricted documents, defaults to the saved one",
		},
		&cli.StringFlag{
			Name:    ParamProxy,
			Aliases: []string{"p"},
			EnvVars: []string{"NOKDOC_PROXY"},
			Usage:   "HTTP proxy url, defaults to the saved one",
		},
	}
}

var (
	flagOutput = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    ParamOutput,
		Aliases: []string{"o"},
		EnvVars: []string{"NOKDOC_OUTPUT"},
		Usage:   "Publication destination (local://, sftp://, webdav://, minio://, ftp://, smb://), defaults to the saved one",
	})
	flagProduct = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    ParamProduct,
		Aliases: []string{"p"},
		Usage:   "Product name, see 'nokdoc products'",
	})
	flagRelease = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    ParamRelease,
		Aliases: []string{"r"},
		Usage:   "Product release, see 'showrels' for the available ones",
	})
	flagFormat = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    ParamFormat,
		Aliases: []string{"f"},
		Usage:   "Documentation format (pdf, html, zip, epub, mobi), every format when empty",
	})
)

func WithOutputFlag(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagOutput,
	}, flags...)
}

// WithProductFlags prepends the product selection flags. The release and
// format flags are included when withRelease is true.
func WithProductFlags(withRelease bool, flags ...cli.Flag) []cli.Flag {
	productFlags := []cli.Flag{flagProduct}
	if withRelease {
		productFlags = append(productFlags, flagRelease, flagFormat)
	}

	return append(productFlags, flags...)
}

// LoadConfig is the command Before hook loading flags from the file given
// by the global --config flag.
func LoadConfig(flags []cli.Flag) cli.BeforeFunc {
	return altsrc.InitInputSourceWithContext(flags, NewResolverSourceFromFlagFunc(ParamConfig))
}
