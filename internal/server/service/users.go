package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
)

// UsersService профиль текущего пользователя.
type UsersService struct {
	repo UsersRepo
}

func NewUsersService(repo UsersRepo) *UsersService {
	return &UsersService{repo: repo}
}

// GetProfile возвращает пользователя по id из токена.
// Ошибки: ErrNotFound, если пользователь уже удалён.
func (s *UsersService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// UpdateProfile частично обновляет профиль владельца токена.
//
// Ошибки:
//   - ErrInvalidInput: email передан, но невалиден
//   - ErrAlreadyExists: email занят другим пользователем
//   - ErrNotFound: пользователя нет
func (s *UsersService) UpdateProfile(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error) {
	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		patch.Email = &email
	}
	if err := validateUserPatch(patch); err != nil {
		return models.User{}, err
	}
	// нечего менять: просто отдаём текущий профиль
	if patch.Empty() {
		return s.repo.GetByID(ctx, userID)
	}
	return s.repo.Update(ctx, userID, patch)
}
