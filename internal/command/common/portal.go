package common

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/bornholm/nokdoc/internal/config"
	"github.com/bornholm/nokdoc/internal/core/service"
	"github.com/bornholm/nokdoc/internal/settings"
	"github.com/bornholm/nokdoc/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func GetConfig() (*config.Config, error) {
	conf, err := config.Parse()
	if err != nil {
		return nil, errors.Wrap(err, "could not parse configuration")
	}

	return conf, nil
}

func GetSettings() (settings.Settings, error) {
	store := settings.NewSettingsStore()

	s, err := store.Get(false)
	if err != nil {
		return s, errors.Wrapf(err, "could not load settings from '%s'", store.Path())
	}

	return s, nil
}

// GetLogin returns the portal login from the flags, the environment or the
// saved settings, in that order.
func GetLogin(cCtx *cli.Context) (string, error) {
	if login := cCtx.String(ParamLogin); login != "" {
		return login, nil
	}

	s, err := GetSettings()
	if err != nil {
		return "", errors.WithStack(err)
	}

	return s.Login, nil
}

func getProxy(cCtx *cli.Context, conf *config.Config) (string, error) {
	if proxy := cCtx.String(ParamProxy); proxy != "" {
		return proxy, nil
	}

	if conf.Client.Proxy != "" {
		return conf.Client.Proxy, nil
	}

	s, err := GetSettings()
	if err != nil {
		return "", errors.WithStack(err)
	}

	return s.Proxy, nil
}

// NewPortalClient creates a portal client from the configuration and the
// global flags, without logging in.
func NewPortalClient(cCtx *cli.Context) (*client.Client, *config.Config, error) {
	conf, err := GetConfig()
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	baseURL, err := url.Parse("https://" + strings.TrimSuffix(conf.Portal.DocHost, "/"))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not parse portal host '%s'", conf.Portal.DocHost)
	}

	loginURL, err := url.Parse(conf.Portal.LoginURL)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not parse login url '%s'", conf.Portal.LoginURL)
	}

	funcs := []client.OptionFunc{
		client.WithBaseURL(baseURL),
		client.WithLoginURL(loginURL),
		client.WithUserAgent(conf.Client.UserAgent),
		client.WithTimeout(conf.Client.Timeout),
		client.WithMaxRetries(conf.Client.MaxRetries),
		client.WithRateLimit(conf.Client.RateLimitInterval, conf.Client.RateLimitBurst),
		client.WithCache(conf.Client.CacheSize, conf.Client.CacheTTL),
	}

	proxy, err := getProxy(cCtx, conf)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	if proxy != "" {
		proxyURL, err := url.Parse(proxy)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "could not parse proxy url '%s'", proxy)
		}

		funcs = append(funcs, client.WithProxyURL(proxyURL))
	}

	return client.New(funcs...), conf, nil
}

// GetPortalClient creates a portal client and logs in when a login is
// known. Without login the session stays anonymous.
func GetPortalClient(cCtx *cli.Context) (*client.Client, *config.Config, error) {
	portal, conf, err := NewPortalClient(cCtx)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	login, err := GetLogin(cCtx)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	if login == "" {
		return portal, conf, nil
	}

	password, err := GetPassword(conf, login)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	if err := portal.Login(cCtx.Context, login, password); err != nil {
		return nil, nil, errors.Wrapf(err, "could not log in as '%s'", login)
	}

	slog.InfoContext(cCtx.Context, "logged in", slog.String("login", login))

	return portal, conf, nil
}

func NewDocsetManager(portal *client.Client, conf *config.Config) *service.DocsetManager {
	return service.NewDocsetManager(
		portal,
		service.WithDocsetManagerDocHost(conf.Portal.DocHost),
		service.WithDocsetManagerSynthesizedFamily(conf.Portal.SynthesizedFamily),
	)
}
