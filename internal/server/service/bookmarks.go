package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
)

// BookmarksService реализует бизнес-логику работы с закладками.
// Сервис:
//   - валидирует входные данные;
//   - передаёт владельца (userID) в каждый вызов хранилища;
//   - не знает о HTTP и БД напрямую.
type BookmarksService struct {
	repo BookmarksRepo
}

// NewBookmarksService создаёт новый BookmarksService.
func NewBookmarksService(repo BookmarksRepo) *BookmarksService {
	return &BookmarksService{repo: repo}
}

// Create создаёт закладку пользователя.
//
// Валидации:
//   - title и link не пустые.
//
// Ошибки:
//   - ErrInvalidInput: невалидные данные;
//   - ErrInternal: ошибка хранилища.
func (s *BookmarksService) Create(ctx context.Context, userID int64, b models.NewBookmark) (models.Bookmark, error) {
	if err := validateNewBookmark(b); err != nil {
		return models.Bookmark{}, err
	}
	return s.repo.Create(ctx, userID, b)
}

// List возвращает все закладки пользователя в порядке создания.
func (s *BookmarksService) List(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	list, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Bookmark{}
	}
	return list, nil
}

// Get возвращает закладку пользователя по id.
//
// Ошибки:
//   - ErrNotFound: закладки нет или она чужая.
func (s *BookmarksService) Get(ctx context.Context, userID, id int64) (models.Bookmark, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// Update частично обновляет закладку: меняются только переданные поля.
//
// Ошибки:
//   - ErrInvalidInput: передан пустой title или link;
//   - ErrNotFound: закладки нет или она чужая.
func (s *BookmarksService) Update(ctx context.Context, userID, id int64, patch models.BookmarkPatch) (models.Bookmark, error) {
	if err := validateBookmarkPatch(patch); err != nil {
		return models.Bookmark{}, err
	}
	if patch.Empty() {
		return s.repo.GetByID(ctx, userID, id)
	}
	return s.repo.Update(ctx, userID, id, patch)
}

// Delete удаляет закладку пользователя.
func (s *BookmarksService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}
