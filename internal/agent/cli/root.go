// Package cli реализует командный интерфейс (CLI) клиентского приложения bookmarks.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локальных учётных данных (access токен) из конфигурационного файла;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета: функция Execute.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/agent/config"
)

// DefaultServerURL адрес сервера, если --server не указан.
const DefaultServerURL = "http://127.0.0.1:8080"

// ErrNotSignedIn возвращается командами, которым нужен access токен.
var ErrNotSignedIn = errors.New("no access_token, run: bookmarks signin")

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL: базовый URL сервера bookmarks.
	ServerURL string
	// Insecure: не проверять TLS сертификат сервера.
	Insecure bool

	// CredsPath: путь к файлу с сохранённым access токеном.
	CredsPath string
	// Creds: загруженные учётные данные. Может быть nil, если загрузка не выполнялась.
	Creds *config.Credentials
}

// token возвращает сохранённый access токен или ErrNotSignedIn.
func (a *App) token() (string, error) {
	if a.Creds == nil || a.Creds.AccessToken == "" {
		return "", ErrNotSignedIn
	}
	return a.Creds.AccessToken, nil
}

// saveToken запоминает токен вместе с сервером, который его выдал.
func (a *App) saveToken(token string) error {
	if a.Creds == nil {
		a.Creds = &config.Credentials{}
	}
	a.Creds.AccessToken = token
	a.Creds.ServerURL = a.ServerURL
	return config.Save(a.CredsPath, a.Creds)
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются командой version.
// В PersistentPreRunE определяется путь к файлу учётных данных и загружается токен.
// Если --server не указан явно, используется сервер, выдавший сохранённый токен.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "bookmarks",
		Short: "bookmarks CLI: клиент сервера закладок",
		Long: `bookmarks CLI.

Команды:
  signup    Регистрация (токен сохраняется локально)
  signin    Вход (токен сохраняется локально)
  signout   Удалить сохранённый токен
  me        Профиль текущего пользователя
  profile   Изменение профиля
  bookmark  Работа с закладками (add, list, get, edit, delete)
  version   Версия и дата сборки

Примеры:
  bookmarks signup --email test@example.com --password StrongPass123
  echo StrongPass123 | bookmarks signin --email test@example.com --password-stdin
  bookmarks bookmark add --title "Go blog" --link https://go.dev/blog
  bookmarks bookmark list
  bookmarks bookmark edit 1 --description "official"
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.CredsPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				app.CredsPath = p
			}

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return fmt.Errorf("load credentials %s: %w", app.CredsPath, err)
			}
			app.Creds = creds

			if !cmd.Flags().Changed("server") && creds.ServerURL != "" {
				app.ServerURL = creds.ServerURL
			}
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", DefaultServerURL, "server base URL")
	cmd.PersistentFlags().BoolVar(&app.Insecure, "insecure", false, "skip TLS certificate verification (dev only)")
	cmd.PersistentFlags().StringVar(&app.CredsPath, "credentials", "", "credentials file (default ~/.bookmarks/credentials.json)")

	cmd.AddCommand(NewSignupCmd(app))
	cmd.AddCommand(NewSigninCmd(app))
	cmd.AddCommand(NewSignoutCmd(app))
	cmd.AddCommand(NewMeCmd(app))
	cmd.AddCommand(NewProfileCmd(app))
	cmd.AddCommand(NewBookmarkCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке сообщение выводится в stderr, процесс завершается с кодом 1.
func Execute(buildVersion, buildDate string) {
	cmd := NewRootCmd(buildVersion, buildDate)
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
