package api

import (
	"net/http"

	"go.uber.org/zap"

	serverModels "github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

// CreateBookmark создаёт закладку для аутентифицированного пользователя.
//
// Требует JWT-аутентификацию.
//
// Возможные ошибки:
//   - ErrInvalidInput: пустые title или link;
//   - ErrBadJSON: тело не JSON;
//   - ErrUnauthorized: пользователь не аутентифицирован;
//   - ErrInternal: внутренняя ошибка сервера.
//
// @Summary      Create bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.CreateBookmarkRequest true "Bookmark"
// @Success      201 {object} models.Bookmark
// @Failure      400 {object} models.ErrorResponse "Invalid input or bad JSON"
// @Failure      413 {object} models.ErrorResponse "Request body too large"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /bookmarks/bookmark [post]
func (h *Handler) CreateBookmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.CreateBookmarkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	b, err := h.Svc.Bookmarks.Create(r.Context(), userID, serverModels.NewBookmark{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		h.writeServiceError(w, r, err, "create bookmark", zap.Int64("user_id", userID))
		return
	}

	WriteJSON(w, http.StatusCreated, b.DTO())
}

// ListBookmarks возвращает все закладки пользователя.
//
// Если закладок нет, возвращается пустой массив.
//
// @Summary      List bookmarks
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array}  models.Bookmark
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /bookmarks [get]
func (h *Handler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	list, err := h.Svc.Bookmarks.List(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err, "list bookmarks", zap.Int64("user_id", userID))
		return
	}

	WriteJSON(w, http.StatusOK, serverModels.BookmarkDTOs(list))
}

// GetBookmark возвращает закладку по id.
//
// @Summary      Get bookmark
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Bookmark ID"
// @Success      200 {object} models.Bookmark
// @Failure      400 {object} models.ErrorResponse "Invalid id"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      404 {object} models.ErrorResponse "Not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /bookmarks/{id} [get]
func (h *Handler) GetBookmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err)
		return
	}

	b, err := h.Svc.Bookmarks.Get(r.Context(), userID, id)
	if err != nil {
		h.writeServiceError(w, r, err, "get bookmark", zap.Int64("user_id", userID), zap.Int64("bookmark_id", id))
		return
	}

	WriteJSON(w, http.StatusOK, b.DTO())
}

// EditBookmark частично обновляет закладку, меняются только переданные поля.
//
// @Summary      Edit bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                        true "Bookmark ID"
// @Param        request body models.EditBookmarkRequest true "Fields to update"
// @Success      200 {object} models.Bookmark
// @Failure      400 {object} models.ErrorResponse "Invalid input or bad JSON"
// @Failure      413 {object} models.ErrorResponse "Request body too large"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      404 {object} models.ErrorResponse "Not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /bookmarks/{id} [patch]
func (h *Handler) EditBookmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err)
		return
	}

	var req models.EditBookmarkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	b, err := h.Svc.Bookmarks.Update(r.Context(), userID, id, serverModels.BookmarkPatch{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		h.writeServiceError(w, r, err, "update bookmark", zap.Int64("user_id", userID), zap.Int64("bookmark_id", id))
		return
	}

	WriteJSON(w, http.StatusOK, b.DTO())
}

// DeleteBookmark удаляет закладку.
//
// @Summary      Delete bookmark
// @Tags         bookmarks
// @Security     BearerAuth
// @Param        id path int true "Bookmark ID"
// @Success      204 "No Content"
// @Failure      400 {object} models.ErrorResponse "Invalid id"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      404 {object} models.ErrorResponse "Not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /bookmarks/{id} [delete]
func (h *Handler) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Bookmarks.Delete(r.Context(), userID, id); err != nil {
		h.writeServiceError(w, r, err, "delete bookmark", zap.Int64("user_id", userID), zap.Int64("bookmark_id", id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
