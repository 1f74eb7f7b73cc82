package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
)

// BookmarksRepository закладки в SQLite, каждый запрос ограничен владельцем.
type BookmarksRepository struct {
	db *bun.DB
}

func NewBookmarksRepository(db *bun.DB) *BookmarksRepository {
	return &BookmarksRepository{db: db}
}

func (r *BookmarksRepository) Create(ctx context.Context, ownerID int64, b models.NewBookmark) (models.Bookmark, error) {
	ts := now()
	row := &bookmarkRow{
		UserID:      ownerID,
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	if _, err := r.db.NewInsert().Model(row).Returning("id").Exec(ctx); err != nil {
		return models.Bookmark{}, mapError("insert bookmark", err)
	}
	return row.toModel(), nil
}

func (r *BookmarksRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Bookmark, error) {
	var rows []bookmarkRow
	err := r.db.NewSelect().
		Model(&rows).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, mapError("list bookmarks", err)
	}

	out := make([]models.Bookmark, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

func (r *BookmarksRepository) GetByID(ctx context.Context, ownerID, id int64) (models.Bookmark, error) {
	var row bookmarkRow
	err := r.db.NewSelect().
		Model(&row).
		Where("id = ?", id).
		Where("user_id = ?", ownerID).
		Scan(ctx)
	if err != nil {
		return models.Bookmark{}, mapError("select bookmark", err)
	}
	return row.toModel(), nil
}

// Update применяет патч и возвращает итоговую запись в одной транзакции.
func (r *BookmarksRepository) Update(ctx context.Context, ownerID, id int64, patch models.BookmarkPatch) (models.Bookmark, error) {
	var row bookmarkRow

	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		q := tx.NewUpdate().
			Model((*bookmarkRow)(nil)).
			Set("updated_at = ?", now()).
			Where("id = ?", id).
			Where("user_id = ?", ownerID)
		if patch.Title != nil {
			q = q.Set("title = ?", *patch.Title)
		}
		if patch.Description != nil {
			q = q.Set("description = ?", *patch.Description)
		}
		if patch.Link != nil {
			q = q.Set("link = ?", *patch.Link)
		}

		res, err := q.Exec(ctx)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return serr.ErrNotFound
		}

		return tx.NewSelect().Model(&row).Where("id = ?", id).Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return models.Bookmark{}, err
		}
		return models.Bookmark{}, mapError("update bookmark", err)
	}
	return row.toModel(), nil
}

func (r *BookmarksRepository) Delete(ctx context.Context, ownerID, id int64) error {
	res, err := r.db.NewDelete().
		Model((*bookmarkRow)(nil)).
		Where("id = ?", id).
		Where("user_id = ?", ownerID).
		Exec(ctx)
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
