package common

import (
	"github.com/bornholm/nokdoc/internal/filesystem"
	"github.com/bornholm/nokdoc/internal/filesystem/backend"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	// Publication backends
	_ "github.com/bornholm/nokdoc/internal/filesystem/backend/ftp"
	_ "github.com/bornholm/nokdoc/internal/filesystem/backend/local"
	_ "github.com/bornholm/nokdoc/internal/filesystem/backend/minio"
	_ "github.com/bornholm/nokdoc/internal/filesystem/backend/sftp"
	_ "github.com/bornholm/nokdoc/internal/filesystem/backend/smb"
	_ "github.com/bornholm/nokdoc/internal/filesystem/backend/webdav"
)

// GetOutput returns the publication destination from the --output flag or
// the saved settings.
func GetOutput(cCtx *cli.Context) (string, error) {
	if output := cCtx.String(ParamOutput); output != "" {
		return output, nil
	}

	s, err := GetSettings()
	if err != nil {
		return "", errors.WithStack(err)
	}

	return s.Output, nil
}

func GetOutputBackend(cCtx *cli.Context) (filesystem.Backend, error) {
	output, err := GetOutput(cCtx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	b, err := backend.New(output)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create publication backend from '%s'", output)
	}

	return b, nil
}
