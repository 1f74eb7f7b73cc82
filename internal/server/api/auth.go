// HTTP-хендлеры регистрации и входа
package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

// Signup обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 201 Created: регистрация успешна, в теле access токен;
//   - 400 Bad Request: неверный JSON или невалидные входные данные;
//   - 409 Conflict: пользователь уже существует;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Sign up
// @Description  Registers a new user and returns an access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body models.AuthRequest true "Credentials"
// @Success      201 {object} models.TokenResponse
// @Failure      400 {object} models.ErrorResponse "Invalid input or bad JSON"
// @Failure      413 {object} models.ErrorResponse "Request body too large"
// @Failure      409 {object} models.ErrorResponse "Email already taken"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /auth/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	token, err := h.Svc.Auth.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, r, err, "signup")
		return
	}

	WriteJSON(w, http.StatusCreated, models.TokenResponse{AccessToken: token})
}

// Signin обрабатывает вход пользователя.
//
// Ответы:
//   - 200 OK: успешный вход;
//   - 400 Bad Request: неверный JSON или невалидные входные данные;
//   - 401 Unauthorized: неверные учётные данные;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Sign in
// @Description  Authenticates a user by email and password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body models.AuthRequest true "Credentials"
// @Success      200 {object} models.TokenResponse
// @Failure      400 {object} models.ErrorResponse "Invalid input or bad JSON"
// @Failure      413 {object} models.ErrorResponse "Request body too large"
// @Failure      401 {object} models.ErrorResponse "Invalid credentials"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /auth/signin [post]
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	token, err := h.Svc.Auth.Signin(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, r, err, "signin")
		return
	}

	WriteJSON(w, http.StatusOK, models.TokenResponse{AccessToken: token})
}
