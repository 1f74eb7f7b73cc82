package repository

import (
	"context"
	"database/sql"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
)

const bookmarkColumns = `id, user_id, title, description, link, created_at, updated_at`

// BookmarksRepository реализует доступ к закладкам (PostgreSQL).
//
// Каждый запрос фильтруется по user_id владельца: чужая закладка
// неотличима от несуществующей и даёт ErrNotFound.
type BookmarksRepository struct {
	db *sql.DB
}

// NewBookmarksRepository создаёт новый экземпляр BookmarksRepository.
func NewBookmarksRepository(db *sql.DB) *BookmarksRepository {
	return &BookmarksRepository{db: db}
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// Create сохраняет закладку владельца ownerID.
//
// Возвращает запись с id и временными метками, выставленными базой.
func (r *BookmarksRepository) Create(ctx context.Context, ownerID int64, b models.NewBookmark) (models.Bookmark, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO bookmarks (user_id, title, description, link)
		VALUES ($1, $2, $3, $4)
		RETURNING `+bookmarkColumns,
		ownerID,
		b.Title,
		b.Description,
		b.Link,
	)

	out, err := scanBookmark(row)
	if err != nil {
		return models.Bookmark{}, mapError("insert bookmark", err)
	}
	return out, nil
}

// ListByOwner возвращает все закладки владельца в порядке создания.
//
// Если закладок нет, возвращается пустой (не nil) срез.
func (r *BookmarksRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+bookmarkColumns+`
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY id
	`, ownerID)
	if err != nil {
		return nil, mapError("list bookmarks", err)
	}
	defer rows.Close()

	out := make([]models.Bookmark, 0)
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, mapError("scan bookmark", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("iterate bookmarks", err)
	}
	return out, nil
}

// GetByID возвращает закладку, если она принадлежит ownerID.
func (r *BookmarksRepository) GetByID(ctx context.Context, ownerID, id int64) (models.Bookmark, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+bookmarkColumns+`
		FROM bookmarks
		WHERE id = $1 AND user_id = $2
	`, id, ownerID)

	out, err := scanBookmark(row)
	if err != nil {
		return models.Bookmark{}, mapError("select bookmark", err)
	}
	return out, nil
}

// Update применяет частичное обновление одним запросом и обновляет updated_at.
func (r *BookmarksRepository) Update(ctx context.Context, ownerID, id int64, patch models.BookmarkPatch) (models.Bookmark, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE bookmarks
		SET title       = COALESCE($3, title),
		    description = COALESCE($4, description),
		    link        = COALESCE($5, link),
		    updated_at  = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+bookmarkColumns,
		id, ownerID, patch.Title, patch.Description, patch.Link,
	)

	out, err := scanBookmark(row)
	if err != nil {
		return models.Bookmark{}, mapError("update bookmark", err)
	}
	return out, nil
}

// Delete удаляет закладку владельца.
//
// Ошибки:
//   - ErrNotFound: закладка не найдена или принадлежит другому пользователю
//   - ErrInternal: ошибка базы данных
func (r *BookmarksRepository) Delete(ctx context.Context, ownerID, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM bookmarks WHERE id = $1 AND user_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return mapError("delete bookmark", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return mapError("delete bookmark rows", err)
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}

func scanBookmark(s rowScanner) (models.Bookmark, error) {
	var (
		b    models.Bookmark
		desc sql.NullString
	)
	if err := s.Scan(&b.ID, &b.UserID, &b.Title, &desc, &b.Link, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return models.Bookmark{}, err
	}
	b.Description = nullString(desc)
	return b, nil
}
