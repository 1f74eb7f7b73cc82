package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

// NewMeCmd создаёт команду вывода профиля текущего пользователя.
//
// Пример использования:
//
//	bookmarks me
func NewMeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Показать профиль текущего пользователя",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}

			p, err := app.client().Me(cmd.Context(), token)
			if err != nil {
				return err
			}
			printProfile(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

// NewProfileCmd создаёт группу команд для работы с профилем.
func NewProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Работа с профилем пользователя",
	}
	cmd.AddCommand(newProfileEditCmd(app))
	return cmd
}

// newProfileEditCmd частично обновляет профиль.
//
// На сервер уходят только явно указанные флаги, так что
// --first-name "" очищает имя, а отсутствие флага оставляет его как есть.
func newProfileEditCmd(app *App) *cobra.Command {
	var firstName, lastName, email string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Изменить имя, фамилию или email",
		Long: `Изменяет переданные поля профиля.

Примеры:
  bookmarks profile edit --first-name Ivan --last-name Petrov
  bookmarks profile edit --email new@example.com
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}

			var req models.EditUserRequest
			if cmd.Flags().Changed("first-name") {
				req.FirstName = &firstName
			}
			if cmd.Flags().Changed("last-name") {
				req.LastName = &lastName
			}
			if cmd.Flags().Changed("email") {
				req.Email = &email
			}

			p, err := app.client().EditUser(cmd.Context(), token, req)
			if err != nil {
				return err
			}
			printProfile(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&email, "email", "", "new email")

	return cmd
}

func printProfile(w io.Writer, p models.Profile) {
	fmt.Fprintf(w,
		"ID: %d\nEmail: %s\nFirstName: %s\nLastName: %s\nCreatedAt: %s\nUpdatedAt: %s\n",
		p.ID, p.Email, orDash(p.FirstName), orDash(p.LastName),
		p.CreatedAt.Format(timeLayout), p.UpdatedAt.Format(timeLayout),
	)
}
