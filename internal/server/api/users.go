package api

import (
	"net/http"

	"go.uber.org/zap"

	serverModels "github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

// Me возвращает профиль текущего пользователя.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.Profile
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      404 {object} models.ErrorResponse "User not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /users/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	u, err := h.Svc.Users.GetProfile(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err, "get profile", zap.Int64("user_id", userID))
		return
	}

	WriteJSON(w, http.StatusOK, u.Profile())
}

// EditUser частично обновляет профиль текущего пользователя.
//
// @Summary      Edit current user
// @Description  Updates only the provided fields of the caller's profile.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.EditUserRequest true "Fields to update"
// @Success      200 {object} models.Profile
// @Failure      400 {object} models.ErrorResponse "Invalid input or bad JSON"
// @Failure      413 {object} models.ErrorResponse "Request body too large"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      404 {object} models.ErrorResponse "User not found"
// @Failure      409 {object} models.ErrorResponse "Email already taken"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /users [patch]
func (h *Handler) EditUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.EditUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	u, err := h.Svc.Users.UpdateProfile(r.Context(), userID, serverModels.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		h.writeServiceError(w, r, err, "update profile", zap.Int64("user_id", userID))
		return
	}

	WriteJSON(w, http.StatusOK, u.Profile())
}
