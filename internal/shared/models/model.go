// Package models содержит модели HTTP API, общие для сервера и CLI-клиента.
//
// Имена JSON-полей совпадают с публичным контрактом API (camelCase),
// кроме access_token: его клиенты исторически читают именно так.
package models

import "time"

// AuthRequest: тело запроса регистрации и входа.
//
// Используется в:
//
//	POST /auth/signup
//	POST /auth/signin
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse: ответ с выданным access-токеном.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Profile: профиль пользователя в ответах API.
//
// Хэш пароля в профиль не попадает никогда.
type Profile struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EditUserRequest: запрос на частичное обновление профиля.
//
// Используется в:
//
//	PATCH /users
//
// Все поля: указатели: обновляются только переданные.
type EditUserRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// Bookmark: закладка в ответах API.
type Bookmark struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateBookmarkRequest: запрос на создание закладки.
//
// Используется в:
//
//	POST /bookmarks/bookmark
//
// Title и Link обязательны, Description опционально.
type CreateBookmarkRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Link        string  `json:"link"`
}

// EditBookmarkRequest: запрос на частичное обновление закладки.
//
// Используется в:
//
//	PATCH /bookmarks/{id}
type EditBookmarkRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty"`
}

// ErrorResponse стандартный формат ошибки API.
//
// Fields заполняется только для ошибок валидации.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
