package common

import (
	"context"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/Bornholm/amatl/pkg/resolver"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	"gopkg.in/yaml.v2"

	// Register resolver schemes

	_ "github.com/Bornholm/amatl/pkg/resolver/file"
	_ "github.com/Bornholm/amatl/pkg/resolver/http"
	_ "github.com/Bornholm/amatl/pkg/resolver/stdin"
)

func NewResolverSourceFromFlagFunc(flag string) func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
	return func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
		if urlStr := cCtx.String(flag); urlStr != "" {
			return NewResolvedInputSource(cCtx.Context, urlStr)
		}

		return altsrc.NewMapInputSource("", map[any]any{}), nil
	}
}

// ParseLocation turns a path, "-" or an url into an url the resolver can
// handle. Relative paths are made absolute.
func ParseLocation(location string) (*url.URL, error) {
	if location == "-" {
		return &url.URL{Scheme: "stdin"}, nil
	}

	u, err := url.Parse(location)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse location '%s'", location)
	}

	if u.Scheme != "" && len(u.Scheme) > 1 {
		return u, nil
	}

	absPath, err := filepath.Abs(location)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &url.URL{Scheme: "file", Path: filepath.ToSlash(absPath)}, nil
}

// Resolve opens the content found at location. The caller closes it.
func Resolve(ctx context.Context, location string) (io.ReadCloser, *url.URL, error) {
	u, err := ParseLocation(location)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	reader, err := resolver.Resolve(ctx, u)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not resolve '%s'", location)
	}

	return reader, u, nil
}

func NewResolvedInputSource(ctx context.Context, urlStr string) (altsrc.InputSourceContext, error) {
	reader, url, err := Resolve(ctx, urlStr)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	ext := filepath.Ext(url.Path)
	switch ext {
	case ".json", ".yaml", ".yml":
		var values map[any]any

		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, errors.WithStack(err)
		}

		values, err = rewriteRelativeURL(url, values)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return altsrc.NewMapInputSource(urlStr, values), nil

	default:
		return nil, errors.Errorf("no parser associated with '%s' file extension", ext)
	}
}

// rewriteRelativeURL makes the relative paths found in a configuration file
// relative to the file itself.
func rewriteRelativeURL(fromURL *url.URL, values map[any]any) (map[any]any, error) {
	baseURL := *fromURL
	baseURL.Path = filepath.Dir(fromURL.Path)

	if baseURL.Scheme == "file" {
		absPath, err := filepath.Abs(baseURL.Path)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		baseURL.Path = absPath
	}

	for key, rawValue := range values {
		value, ok := rawValue.(string)
		if !ok {
			continue
		}

		switch {
		case isURL(value):
			continue

		case isPath(value):
			if filepath.IsAbs(value) {
				continue
			}

			values[key] = baseURL.JoinPath(value).String()
		}
	}

	return values, nil
}

// isPath only matches explicit relative paths: release numbers like "14.0"
// look like file names too.
func isPath(str string) bool {
	return strings.HasPrefix(str, "./") || strings.HasPrefix(str, "../")
}

func isURL(str string) bool {
	_, err := url.ParseRequestURI(str)
	return err == nil
}
