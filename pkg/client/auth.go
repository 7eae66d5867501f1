package client

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

const (
	loginTarget = "https://market.alcatel-lucent.com/release/employee/SPEmployeeLoginRedirectSvlt?SP_PAGE_ID=0&FINAL_TARGET=https%3A%2F%2Fsupport.alcatel-lucent.com%2Fportal%2Fweb%2Fsupport"
	// The login page is served back, with its validation script, when the
	// credentials are rejected.
	loginFormMarker = "function checkUserName"
)

// Login authenticates the session. Session cookies are kept in the client
// cookie jar for the following requests.
func (c *Client) Login(ctx context.Context, username string, password string) error {
	form := url.Values{}
	form.Set("USERNAME", username)
	form.Set("PASSWORD", password)
	form.Set("Login", "Log in")
	form.Set("TARGET", loginTarget)
	form.Set("USER", username)

	slog.DebugContext(ctx, "logging in", slog.String("username", username))

	text, err := c.formRequest(ctx, c.loginURL, form)
	if err != nil {
		return errors.WithStack(err)
	}

	if strings.Contains(text, loginFormMarker) {
		return errors.WithStack(ErrLoginFailed)
	}

	c.mutex.Lock()
	c.authenticated = true
	c.username = username
	c.mutex.Unlock()

	if c.cache != nil {
		c.cache.Purge()
	}

	return nil
}
