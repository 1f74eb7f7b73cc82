package api

import (
	"context"
	"strconv"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

// CreateBookmark создаёт закладку текущего пользователя.
//
// Выполняет запрос:
//
//	POST /bookmarks/bookmark
func (c *Client) CreateBookmark(ctx context.Context, accessToken string, req models.CreateBookmarkRequest) (models.Bookmark, error) {
	var resp models.Bookmark
	err := c.PostJSON(ctx, "/bookmarks/bookmark", req, &resp, accessToken)
	return resp, err
}

// ListBookmarks возвращает все закладки текущего пользователя.
//
// Выполняет запрос:
//
//	GET /bookmarks
func (c *Client) ListBookmarks(ctx context.Context, accessToken string) ([]models.Bookmark, error) {
	var resp []models.Bookmark
	if err := c.GetJSON(ctx, "/bookmarks", &resp, accessToken); err != nil {
		return nil, err
	}
	if resp == nil {
		resp = []models.Bookmark{}
	}
	return resp, nil
}

// GetBookmark возвращает одну закладку по ID.
//
// Чужая закладка для сервера не отличается от несуществующей: вернётся 404.
func (c *Client) GetBookmark(ctx context.Context, accessToken string, id int64) (models.Bookmark, error) {
	var resp models.Bookmark
	err := c.GetJSON(ctx, bookmarkPath(id), &resp, accessToken)
	return resp, err
}

// EditBookmark частично обновляет закладку (PATCH /bookmarks/{id}).
func (c *Client) EditBookmark(ctx context.Context, accessToken string, id int64, req models.EditBookmarkRequest) (models.Bookmark, error) {
	var resp models.Bookmark
	err := c.PatchJSON(ctx, bookmarkPath(id), req, &resp, accessToken)
	return resp, err
}

// DeleteBookmark удаляет закладку (DELETE /bookmarks/{id}, ответ 204).
func (c *Client) DeleteBookmark(ctx context.Context, accessToken string, id int64) error {
	return c.DeleteJSON(ctx, bookmarkPath(id), nil, accessToken)
}

func bookmarkPath(id int64) string {
	return "/bookmarks/" + strconv.FormatInt(id, 10)
}
