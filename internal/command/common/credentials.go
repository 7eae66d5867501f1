package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/bornholm/nokdoc/internal/config"
	"github.com/pkg/errors"
	"github.com/zalando/go-keyring"
	"golang.org/x/term"
)

const keyringService = "nokdoc"

var ErrNoPassword = errors.New("no password available")

// GetPassword resolves the password of login from the environment, the OS
// keyring, then an interactive prompt.
func GetPassword(conf *config.Config, login string) (string, error) {
	if conf.Password != "" {
		return conf.Password, nil
	}

	password, err := keyring.Get(keyringService, login)
	if err == nil {
		return password, nil
	}

	if !errors.Is(err, keyring.ErrNotFound) {
		return "", errors.Wrap(err, "could not read password from keyring")
	}

	password, err = PromptPassword(login)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return password, nil
}

func PromptPassword(login string) (string, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return "", errors.Wrapf(ErrNoPassword, "set NOKDOC_PASSWORD or run 'nokdoc -l %s login'", login)
	}

	fmt.Fprintf(os.Stderr, "Password for '%s': ", login)

	data, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", errors.WithStack(err)
	}

	password := strings.TrimSpace(string(data))
	if password == "" {
		return "", errors.WithStack(ErrNoPassword)
	}

	return password, nil
}

func SavePassword(login string, password string) error {
	if err := keyring.Set(keyringService, login, password); err != nil {
		return errors.Wrap(err, "could not save password in keyring")
	}

	return nil
}

func DeletePassword(login string) error {
	if err := keyring.Delete(keyringService, login); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return errors.Wrap(err, "could not remove password from keyring")
	}

	return nil
}
