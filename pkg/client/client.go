package client

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type Client struct {
	baseURL    *url.URL
	loginURL   *url.URL
	httpClient *http.Client
	userAgent  string
	cache      *expirable.LRU[string, string]

	mutex         sync.RWMutex
	authenticated bool
	username      string
}

// Authenticated reports whether a login succeeded on this client session.
func (c *Client) Authenticated() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.authenticated
}

// Username returns the login of the authenticated session, if any.
func (c *Client) Username() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.username
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = opts.newHTTPClient()
	} else {
		clone := *httpClient
		httpClient = &clone
	}

	if httpClient.Jar == nil {
		// cookiejar.New never fails without options
		jar, _ := cookiejar.New(nil)
		httpClient.Jar = jar
	}

	var cache *expirable.LRU[string, string]
	if opts.CacheSize > 0 {
		cache = expirable.NewLRU[string, string](opts.CacheSize, nil, opts.CacheTTL)
	}

	return &Client{
		baseURL:    opts.BaseURL,
		loginURL:   opts.LoginURL,
		httpClient: httpClient,
		userAgent:  opts.UserAgent,
		cache:      cache,
	}
}
