// Серверная модель пользователя
package models

import (
	"time"

	sharedModels "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

type User struct {
	ID           int64
	Email        string
	PasswordHash string `json:"-"` // наружу не отдаём никогда
	FirstName    *string
	LastName     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserPatch: частичное обновление профиля, nil означает "не менять".
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// Empty сообщает, что в патче нет ни одного поля.
func (p UserPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil
}

// Profile переводит пользователя в публичное представление без хэша пароля.
func (u User) Profile() sharedModels.Profile {
	return sharedModels.Profile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Identity: аутентифицированный пользователь, извлечённый из access-токена.
type Identity struct {
	UserID int64
	Email  string
}
