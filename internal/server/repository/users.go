package repository

import (
	"context"
	"database/sql"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
)

const userColumns = `id, email, password_hash, first_name, last_name, created_at, updated_at`

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create сохраняет пользователя и возвращает его id.
// Занятый email -> ErrAlreadyExists.
func (r *UsersRepository) Create(ctx context.Context, email, passwordHash string) (int64, error) {
	var id int64

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash)
		 VALUES ($1,$2)
		 RETURNING id`,
		email, passwordHash,
	).Scan(&id)

	if err != nil {
		return 0, mapError("insert user", err)
	}

	return id, nil
}

// GetByEmail возвращает id и хэш пароля для входа.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (int64, string, error) {
	var (
		id   int64
		hash string
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT id, password_hash FROM users WHERE email=$1`,
		email,
	).Scan(&id, &hash)

	if err != nil {
		return 0, "", mapError("select user by email", err)
	}

	return id, hash, nil
}

func (r *UsersRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`,
		id,
	)

	u, err := scanUser(row)
	if err != nil {
		return models.User{}, mapError("select user by id", err)
	}
	return u, nil
}

// Update применяет частичное обновление профиля одним запросом.
// nil-поля патча остаются без изменений.
func (r *UsersRepository) Update(ctx context.Context, id int64, patch models.UserPatch) (models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE users
		 SET first_name = COALESCE($2, first_name),
		     last_name  = COALESCE($3, last_name),
		     email      = COALESCE($4, email),
		     updated_at = now()
		 WHERE id=$1
		 RETURNING `+userColumns,
		id, patch.FirstName, patch.LastName, patch.Email,
	)

	u, err := scanUser(row)
	if err != nil {
		return models.User{}, mapError("update user", err)
	}
	return u, nil
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		u         models.User
		firstName sql.NullString
		lastName  sql.NullString
	)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &firstName, &lastName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return models.User{}, err
	}
	u.FirstName = nullString(firstName)
	u.LastName = nullString(lastName)
	return u, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
