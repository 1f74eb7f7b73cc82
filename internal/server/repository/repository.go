// Package repository содержит PostgreSQL-реализацию хранилища сервера.
//
// Репозитории отвечают только за SQL и перевод ошибок драйвера
// в доменные ошибки из internal/shared/errors, бизнес-логики здесь нет.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"

	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникальности.
const uniqueViolation = "23505"

// mapError переводит ошибку драйвера в доменную.
//
//	sql.ErrNoRows         -> ErrNotFound
//	23505 unique_violation -> ErrAlreadyExists
//	остальное             -> ErrInternal с контекстом op
func mapError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return serr.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return serr.ErrAlreadyExists
	}
	return fmt.Errorf("%w: %s: %v", serr.ErrInternal, op, err)
}

// HealthRepository проверяет доступность базы.
type HealthRepository struct {
	db *sql.DB
}

func NewHealthRepository(db *sql.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

func (r *HealthRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: ping: %v", serr.ErrInternal, err)
	}
	return nil
}
