package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/agent/config"
)

// credentialFlags общие флаги signup и signin.
type credentialFlags struct {
	email     string
	password  string
	fromStdin bool
}

func (f *credentialFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.email, "email", "", "user email")
	cmd.Flags().StringVar(&f.password, "password", "", "user password (prompted if omitted)")
	cmd.Flags().BoolVar(&f.fromStdin, "password-stdin", false, "read password from stdin")
	cmd.MarkFlagRequired("email")
}

// NewSignupCmd создаёт CLI-команду регистрации нового пользователя.
//
// Сервер сразу выдаёт access токен, он сохраняется локально,
// так что отдельный signin после регистрации не нужен.
//
// Пример использования:
//
//	bookmarks signup --email test@example.com --password StrongPass123
func NewSignupCmd(app *App) *cobra.Command {
	var f credentialFlags

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  bookmarks signup --email test@example.com --password StrongPass123
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := ReadPassword(cmd, f.password, f.fromStdin)
			if err != nil {
				return err
			}

			resp, err := app.client().Signup(cmd.Context(), f.email, pw)
			if err != nil {
				return err
			}
			if err := app.saveToken(resp.AccessToken); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "signup ok (token saved)")
			return nil
		},
	}
	f.register(cmd)

	return cmd
}

// NewSigninCmd создаёт CLI-команду входа пользователя.
//
// Полученный access токен сохраняется в локальный файл учётных данных.
//
// Пример использования:
//
//	bookmarks signin --email test@example.com --password StrongPass123
func NewSigninCmd(app *App) *cobra.Command {
	var f credentialFlags

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Вход пользователя (получить access токен)",
		Long: `Вход пользователя.

Пример:
  bookmarks signin --email test@example.com --password StrongPass123
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := ReadPassword(cmd, f.password, f.fromStdin)
			if err != nil {
				return err
			}

			resp, err := app.client().Signin(cmd.Context(), f.email, pw)
			if err != nil {
				return err
			}
			if err := app.saveToken(resp.AccessToken); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "signin ok (token saved)")
			return nil
		},
	}
	f.register(cmd)

	return cmd
}

// NewSignoutCmd создаёт команду, удаляющую сохранённый токен.
//
// Сервер токены не отзывает, токен просто забывается клиентом.
func NewSignoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Удалить сохранённый access токен",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Clear(app.CredsPath); err != nil {
				return err
			}
			app.Creds = &config.Credentials{}
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}
