package surf

import (
	"context"
	"io"
	"time"

	"github.com/bornholm/nokdoc/internal/scraper"
	"github.com/enetx/g"
	"github.com/enetx/surf"
	"github.com/pkg/errors"
)

// Scraper fetches resources with a client impersonating a desktop browser,
// for hosts rejecting plain HTTP clients.
type Scraper struct {
	proxy   string
	timeout time.Duration
}

// Check implements scraper.Scraper.
func (s *Scraper) Check(ctx context.Context, url string) (bool, error) {
	client := s.getClient()
	resp := client.Get(g.String(url)).WithContext(ctx).Do()
	if resp.IsErr() {
		return false, errors.WithStack(resp.Err())
	}

	return resp.IsOk(), nil
}

// Get implements scraper.Scraper.
func (s *Scraper) Get(ctx context.Context, url string) (io.ReadCloser, error) {
	client := s.getClient()
	resp := client.Get(g.String(url)).WithContext(ctx).Do()
	if resp.IsErr() {
		return nil, errors.WithStack(resp.Err())
	}

	return resp.Ok().Body.Reader, nil
}

func (s *Scraper) getClient() *surf.Client {
	builder := surf.NewClient().
		Builder()

	if s.proxy != "" {
		builder = builder.Proxy(g.String(s.proxy))
	}

	builder = builder.Impersonate().RandomOS().Chrome().
		Timeout(s.timeout).
		Retry(2, 3).
		Session()

	return builder.Build().Unwrap()
}

type OptionFunc func(s *Scraper)

func WithProxy(proxy string) OptionFunc {
	return func(s *Scraper) {
		s.proxy = proxy
	}
}

func WithTimeout(timeout time.Duration) OptionFunc {
	return func(s *Scraper) {
		s.timeout = timeout
	}
}

func NewScraper(funcs ...OptionFunc) *Scraper {
	s := &Scraper{
		timeout: 20 * time.Second,
	}
	for _, fn := range funcs {
		fn(s)
	}
	return s
}

var _ scraper.Scraper = &Scraper{}
