package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

const timeLayout = "2006-01-02 15:04:05"

// NewBookmarkCmd создаёт группу команд для работы с закладками.
//
// Все подкоманды требуют сохранённого access токена и видят
// только закладки текущего пользователя.
func NewBookmarkCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookmark",
		Aliases: []string{"bm"},
		Short:   "Работа с закладками",
	}

	cmd.AddCommand(newBookmarkAddCmd(app))
	cmd.AddCommand(newBookmarkListCmd(app))
	cmd.AddCommand(newBookmarkGetCmd(app))
	cmd.AddCommand(newBookmarkEditCmd(app))
	cmd.AddCommand(newBookmarkDeleteCmd(app))

	return cmd
}

func newBookmarkAddCmd(app *App) *cobra.Command {
	var title, description, link string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Создать закладку",
		Long: `Создаёт закладку.

Пример:
  bookmarks bookmark add --title "Go blog" --link https://go.dev/blog --description "news"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}

			req := models.CreateBookmarkRequest{Title: title, Link: link}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}

			b, err := app.client().CreateBookmark(cmd.Context(), token, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created bookmark %d\n", b.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "bookmark title")
	cmd.Flags().StringVar(&link, "link", "", "bookmark link")
	cmd.Flags().StringVar(&description, "description", "", "bookmark description")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("link")

	return cmd
}

func newBookmarkListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Список закладок (ID, title, link, updated_at)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}

			items, err := app.client().ListBookmarks(cmd.Context(), token)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no bookmarks")
				return nil
			}

			for _, b := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n",
					b.ID, b.Title, b.Link, b.UpdatedAt.Format(timeLayout))
			}
			return nil
		},
	}
}

func newBookmarkGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Показать закладку по ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			b, err := app.client().GetBookmark(cmd.Context(), token, id)
			if err != nil {
				return err
			}
			printBookmark(cmd.OutOrStdout(), b)
			return nil
		},
	}
}

// newBookmarkEditCmd отправляет только явно указанные поля.
func newBookmarkEditCmd(app *App) *cobra.Command {
	var title, description, link string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Изменить закладку",
		Long: `Изменяет переданные поля закладки, остальные не трогает.

Примеры:
  bookmarks bookmark edit 1 --title "Go blog"
  bookmarks bookmark edit 1 --description ""
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var req models.EditBookmarkRequest
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			if cmd.Flags().Changed("link") {
				req.Link = &link
			}

			b, err := app.client().EditBookmark(cmd.Context(), token, id, req)
			if err != nil {
				return err
			}
			printBookmark(cmd.OutOrStdout(), b)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&link, "link", "", "new link")

	return cmd
}

func newBookmarkDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Удалить закладку",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := app.client().DeleteBookmark(cmd.Context(), token, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted bookmark %d\n", id)
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid bookmark id %q", s)
	}
	return id, nil
}

func printBookmark(w io.Writer, b models.Bookmark) {
	fmt.Fprintf(w,
		"ID: %d\nTitle: %s\nLink: %s\nDescription: %s\nCreatedAt: %s\nUpdatedAt: %s\n",
		b.ID, b.Title, b.Link, orDash(b.Description),
		b.CreatedAt.Format(timeLayout), b.UpdatedAt.Format(timeLayout),
	)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
