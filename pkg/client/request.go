package client

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bornholm/nokdoc/internal/docdata"
	"github.com/pkg/errors"
)

// endpoint resolves a portal path against the base URL.
func (c *Client) endpoint(path string, query url.Values) *url.URL {
	u := c.baseURL.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u
}

// do sends the request and returns the response when its status is a
// success. The caller owns the response body.
func (c *Client) do(ctx context.Context, method string, u *url.URL, header http.Header, body io.Reader) (*http.Response, error) {
	slogAttrs := []any{
		slog.String("method", method),
		slog.String("path", u.Path),
		slog.String("host", u.Host),
	}

	slog.DebugContext(ctx, "new portal request", slogAttrs...)

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for k, v := range header {
		req.Header[k] = v
	}

	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
		io.Copy(io.Discard, res.Body)
		res.Body.Close()
		return nil, errors.Wrapf(ErrUnexpectedStatus, "%d (%s)", res.StatusCode, res.Status)
	}

	return res, nil
}

func (c *Client) request(ctx context.Context, method string, u *url.URL, header http.Header, body io.Reader, result io.Writer) error {
	res, err := c.do(ctx, method, u, header, body)
	if err != nil {
		return errors.WithStack(err)
	}

	defer res.Body.Close()

	if result == nil {
		result = io.Discard
	}

	if _, err := io.Copy(result, res.Body); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) textRequest(ctx context.Context, method string, u *url.URL, header http.Header, body io.Reader) (string, error) {
	var buff bytes.Buffer

	if err := c.request(ctx, method, u, header, body, &buff); err != nil {
		return "", errors.WithStack(err)
	}

	return buff.String(), nil
}

// jsonRequest decodes the response with the portal's tolerant decoder, which
// recovers payloads prefixed with garbage.
func (c *Client) jsonRequest(ctx context.Context, method string, u *url.URL, header http.Header, body io.Reader, result any) error {
	text, err := c.textRequest(ctx, method, u, header, body)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := docdata.Decode(text, result); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) formRequest(ctx context.Context, u *url.URL, form url.Values) (string, error) {
	header := http.Header{}
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	text, err := c.textRequest(ctx, http.MethodPost, u, header, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return text, nil
}
