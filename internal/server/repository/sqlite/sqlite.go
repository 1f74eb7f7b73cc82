// Package sqlite содержит реализацию хранилища сервера поверх SQLite (bun).
//
// Используется для локального запуска без PostgreSQL и в сквозных тестах.
// Семантика совпадает с PostgreSQL-репозиториями: те же доменные ошибки,
// та же фильтрация по владельцу.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    first_name    TEXT,
    last_name     TEXT,
    created_at    TIMESTAMP NOT NULL,
    updated_at    TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS bookmarks (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id     INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    title       TEXT NOT NULL,
    description TEXT,
    link        TEXT NOT NULL,
    created_at  TIMESTAMP NOT NULL,
    updated_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bookmarks_user_id ON bookmarks (user_id);
`

// CreateSchema создаёт таблицы, если их ещё нет.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

type userRow struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Email        string    `bun:"email,notnull"`
	PasswordHash string    `bun:"password_hash,notnull"`
	FirstName    *string   `bun:"first_name"`
	LastName     *string   `bun:"last_name"`
	CreatedAt    time.Time `bun:"created_at,notnull"`
	UpdatedAt    time.Time `bun:"updated_at,notnull"`
}

func (r userRow) toModel() models.User {
	return models.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type bookmarkRow struct {
	bun.BaseModel `bun:"table:bookmarks,alias:b"`

	ID          int64     `bun:"id,pk,autoincrement"`
	UserID      int64     `bun:"user_id,notnull"`
	Title       string    `bun:"title,notnull"`
	Description *string   `bun:"description"`
	Link        string    `bun:"link,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull"`
	UpdatedAt   time.Time `bun:"updated_at,notnull"`
}

func (r bookmarkRow) toModel() models.Bookmark {
	return models.Bookmark{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Link:        r.Link,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// mapError переводит ошибку SQLite в доменную.
func mapError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return serr.ErrNotFound
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return serr.ErrAlreadyExists
	}
	return fmt.Errorf("%w: %s: %v", serr.ErrInternal, op, err)
}

// now время для created_at/updated_at, в SQLite его выставляем сами.
func now() time.Time {
	return time.Now().UTC()
}

// HealthRepository проверяет доступность базы.
type HealthRepository struct {
	db *bun.DB
}

func NewHealthRepository(db *bun.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

func (r *HealthRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: ping: %v", serr.ErrInternal, err)
	}
	return nil
}
