package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	// Login is the default portal login
	Login    string `env:"LOGIN"`
	Password string `env:"PASSWORD"`
	Portal   Portal `envPrefix:"PORTAL_"`
	Client   Client `envPrefix:"CLIENT_"`
	Sentry   Sentry `envPrefix:"SENTRY_"`
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: "NOKDOC_",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
