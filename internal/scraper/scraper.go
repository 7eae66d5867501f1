package scraper

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// Scraper fetches remote resources given by URL.
type Scraper interface {
	// Get returns the body of the resource. The caller closes it.
	Get(ctx context.Context, url string) (io.ReadCloser, error)
	// Check reports whether the resource can be retrieved.
	Check(ctx context.Context, url string) (bool, error)
}

var ErrUnexpectedStatus = errors.New("unexpected response status")

type HTTPScraper struct {
	client *http.Client
}

// Check implements Scraper.
func (s *HTTPScraper) Check(ctx context.Context, url string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false, errors.WithStack(err)
	}

	res, err := s.client.Do(req)
	if err != nil {
		return false, errors.WithStack(err)
	}

	defer res.Body.Close()

	return res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusBadRequest, nil
}

// Get implements Scraper.
func (s *HTTPScraper) Get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
		res.Body.Close()
		return nil, errors.Wrapf(ErrUnexpectedStatus, "%d (%s)", res.StatusCode, res.Status)
	}

	return res.Body, nil
}

func NewHTTPScraper(client *http.Client) *HTTPScraper {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPScraper{client: client}
}

var _ Scraper = &HTTPScraper{}
