// Package service содержит бизнес-логику приложения (bookmarks).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/config"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Repositories: набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users     UsersRepo
	Bookmarks BookmarksRepo
	Health    HealthRepo
}

// Services: агрегатор всех сервисов приложения.
type Services struct {
	Auth      *AuthService
	Users     *UsersService
	Bookmarks *BookmarksService
	Health    *HealthService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля и JWT).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:      NewAuthService(repos.Users, cfg),
		Users:     NewUsersService(repos.Users),
		Bookmarks: NewBookmarksService(repos.Bookmarks),
		Health:    NewHealthService(repos.Health),
	}
}

// HealthRepo: минимально нужное для health-check.
type HealthRepo interface {
	Ping(ctx context.Context) error
}

// UsersRepo: репозиторий пользователей (auth и профиль).
type UsersRepo interface {
	Create(ctx context.Context, email, passwordHash string) (int64, error)
	GetByEmail(ctx context.Context, email string) (int64, string, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	Update(ctx context.Context, id int64, patch models.UserPatch) (models.User, error)
}

// BookmarksRepo: репозиторий закладок.
//
// Все методы принимают ownerID и обязаны фильтровать по нему:
// чужая закладка для репозитория не существует (ErrNotFound).
type BookmarksRepo interface {
	Create(ctx context.Context, ownerID int64, b models.NewBookmark) (models.Bookmark, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Bookmark, error)
	GetByID(ctx context.Context, ownerID, id int64) (models.Bookmark, error)
	Update(ctx context.Context, ownerID, id int64, patch models.BookmarkPatch) (models.Bookmark, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

// HealthService проверяет, что хранилище отвечает.
type HealthService struct {
	repo HealthRepo
}

func NewHealthService(repo HealthRepo) *HealthService {
	return &HealthService{repo: repo}
}

func (s *HealthService) Check(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
