package config

import "time"

type Client struct {
	Timeout           time.Duration `env:"TIMEOUT" envDefault:"5m"`
	MaxRetries        int           `env:"MAX_RETRIES" envDefault:"5"`
	RateLimitInterval time.Duration `env:"RATE_LIMIT_INTERVAL" envDefault:"250ms"`
	RateLimitBurst    int           `env:"RATE_LIMIT_BURST" envDefault:"2"`
	CacheSize         int           `env:"CACHE_SIZE" envDefault:"64"`
	CacheTTL          time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	UserAgent         string        `env:"USER_AGENT" envDefault:"nokdoc"`
	Proxy             string        `env:"PROXY,expand"`
	// Impersonate fetches remote inputs with a browser-like client
	Impersonate bool `env:"IMPERSONATE" envDefault:"false"`
}
