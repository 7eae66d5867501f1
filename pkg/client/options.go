package client

import (
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL  = "https://infoproducts.alcatel-lucent.com"
	DefaultLoginURL = "https://market.alcatel-lucent.com/login.fcc"
)

type Options struct {
	// BaseURL is the documentation portal root
	BaseURL *url.URL
	// LoginURL is the endpoint receiving the login form
	LoginURL *url.URL
	// HTTPClient overrides the client built from the other options. A cookie
	// jar is attached to it when it has none.
	HTTPClient *http.Client
	ProxyURL   *url.URL
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	// RateLimit is the minimum interval between two portal requests
	RateLimit      time.Duration
	RateLimitBurst int
	CacheSize      int
	CacheTTL       time.Duration
}

type OptionFunc func(opts *Options)

func WithBaseURL(baseURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithLoginURL(loginURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.LoginURL = loginURL
	}
}

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

func WithProxyURL(proxyURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.ProxyURL = proxyURL
	}
}

func WithUserAgent(userAgent string) OptionFunc {
	return func(opts *Options) {
		opts.UserAgent = userAgent
	}
}

func WithTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.Timeout = timeout
	}
}

func WithMaxRetries(maxRetries int) OptionFunc {
	return func(opts *Options) {
		opts.MaxRetries = maxRetries
	}
}

func WithRateLimit(interval time.Duration, burst int) OptionFunc {
	return func(opts *Options) {
		opts.RateLimit = interval
		opts.RateLimitBurst = burst
	}
}

func WithCache(size int, ttl time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.CacheSize = size
		opts.CacheTTL = ttl
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	baseURL, _ := url.Parse(DefaultBaseURL)
	loginURL, _ := url.Parse(DefaultLoginURL)

	opts := &Options{
		BaseURL:        baseURL,
		LoginURL:       loginURL,
		UserAgent:      "nokdoc",
		Timeout:        5 * time.Minute,
		MaxRetries:     5,
		RateLimit:      250 * time.Millisecond,
		RateLimitBurst: 2,
		CacheSize:      64,
		CacheTTL:       10 * time.Minute,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func (o *Options) newHTTPClient() *http.Client {
	base := http.DefaultTransport.(*http.Transport).Clone()
	if o.ProxyURL != nil {
		base.Proxy = http.ProxyURL(o.ProxyURL)
	}

	limit := rate.Inf
	if o.RateLimit > 0 {
		limit = rate.Every(o.RateLimit)
	}

	burst := o.RateLimitBurst
	if burst < 1 {
		burst = 1
	}

	return &http.Client{
		Timeout: o.Timeout,
		Transport: &RateLimitTransport{
			Base:        base,
			MaxRetries:  o.MaxRetries,
			DefaultWait: time.Second,
			Limiter:     rate.NewLimiter(limit, burst),
		},
	}
}
