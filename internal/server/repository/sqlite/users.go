package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
)

type UsersRepository struct {
	db *bun.DB
}

func NewUsersRepository(db *bun.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

func (r *UsersRepository) Create(ctx context.Context, email, passwordHash string) (int64, error) {
	ts := now()
	row := &userRow{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	if _, err := r.db.NewInsert().Model(row).Returning("id").Exec(ctx); err != nil {
		return 0, mapError("insert user", err)
	}
	return row.ID, nil
}

func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (int64, string, error) {
	var row userRow
	err := r.db.NewSelect().
		Model(&row).
		Column("id", "password_hash").
		Where("email = ?", email).
		Scan(ctx)
	if err != nil {
		return 0, "", mapError("select user by email", err)
	}
	return row.ID, row.PasswordHash, nil
}

func (r *UsersRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	var row userRow
	if err := r.db.NewSelect().Model(&row).Where("id = ?", id).Scan(ctx); err != nil {
		return models.User{}, mapError("select user by id", err)
	}
	return row.toModel(), nil
}

// Update обновляет переданные поля и перечитывает строку в одной транзакции.
func (r *UsersRepository) Update(ctx context.Context, id int64, patch models.UserPatch) (models.User, error) {
	var row userRow

	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		q := tx.NewUpdate().
			Model((*userRow)(nil)).
			Set("updated_at = ?", now()).
			Where("id = ?", id)
		if patch.FirstName != nil {
			q = q.Set("first_name = ?", *patch.FirstName)
		}
		if patch.LastName != nil {
			q = q.Set("last_name = ?", *patch.LastName)
		}
		if patch.Email != nil {
			q = q.Set("email = ?", *patch.Email)
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
			return models.User{}, err
		}
		return models.User{}, mapError("update user", err)
	}
	return row.toModel(), nil
}
