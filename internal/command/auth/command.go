package auth

import (
	"log/slog"

	"github.com/bornholm/nokdoc/internal/command/common"
	"github.com/bornholm/nokdoc/internal/settings"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func LoginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Check the portal credentials and save them as default (password in the OS keyring)",
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			login := cCtx.String(common.ParamLogin)
			if login == "" {
				return errors.New("missing login, use 'nokdoc -l <login> login'")
			}

			portal, conf, err := common.NewPortalClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			password := conf.Password
			if password == "" {
				password, err = common.PromptPassword(login)
				if err != nil {
					return errors.WithStack(err)
				}
			}

			if err := portal.Login(ctx, login, password); err != nil {
				return errors.Wrapf(err, "could not log in as '%s'", login)
			}

			if err := common.SavePassword(login, password); err != nil {
				return errors.WithStack(err)
			}

			store := settings.NewSettingsStore()

			s, err := store.Get(true)
			if err != nil {
				return errors.WithStack(err)
			}

			s.Login = login

			if err := store.Save(s); err != nil {
				return errors.WithStack(err)
			}

			slog.InfoContext(ctx, "credentials saved", slog.String("login", login), slog.String("settings", store.Path()))

			return nil
		},
	}
}

func LogoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Forget the saved portal credentials",
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			store := settings.NewSettingsStore()

			s, err := store.Get(true)
			if err != nil {
				return errors.WithStack(err)
			}

			login := cCtx.String(common.ParamLogin)
			if login == "" {
				login = s.Login
			}

			if login == "" {
				slog.InfoContext(ctx, "no saved credentials")
				return nil
			}

			if err := common.DeletePassword(login); err != nil {
				return errors.WithStack(err)
			}

			if s.Login == login {
				s.Login = ""

				if err := store.Save(s); err != nil {
					return errors.WithStack(err)
				}
			}

			slog.InfoContext(ctx, "credentials removed", slog.String("login", login))

			return nil
		},
	}
}
