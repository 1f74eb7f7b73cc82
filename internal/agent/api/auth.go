// В этом файле описаны методы клиента для работы с эндпоинтами
// аутентификации и профиля: регистрация, вход, текущий пользователь, правка профиля.
package api

import (
	"context"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

// Signup регистрирует пользователя и сразу возвращает access токен.
//
// Метод отправляет POST запрос на /auth/signup.
func (c *Client) Signup(ctx context.Context, email, password string) (models.TokenResponse, error) {
	var resp models.TokenResponse
	err := c.PostJSON(ctx, "/auth/signup", models.AuthRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}

// Signin выполняет вход пользователя и получает access токен.
//
// Метод отправляет POST запрос на /auth/signin. Неверный email и неверный
// пароль сервер не различает, в обоих случаях вернётся 401.
func (c *Client) Signin(ctx context.Context, email, password string) (models.TokenResponse, error) {
	var resp models.TokenResponse
	err := c.PostJSON(ctx, "/auth/signin", models.AuthRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}

// Me запрашивает профиль текущего пользователя (GET /users/me).
func (c *Client) Me(ctx context.Context, accessToken string) (models.Profile, error) {
	var resp models.Profile
	err := c.GetJSON(ctx, "/users/me", &resp, accessToken)
	return resp, err
}

// EditUser частично обновляет профиль (PATCH /users) и возвращает его новое состояние.
func (c *Client) EditUser(ctx context.Context, accessToken string, req models.EditUserRequest) (models.Profile, error) {
	var resp models.Profile
	err := c.PatchJSON(ctx, "/users", req, &resp, accessToken)
	return resp, err
}
