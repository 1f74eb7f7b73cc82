// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import (
	"errors"
	"sort"
	"strings"
)

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные (email не найден или пароль не совпал: не различаем)
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Токен не прошёл проверку (подпись, формат, срок жизни)
	ErrInvalidToken = errors.New("invalid token")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден (или принадлежит другому пользователю)
	ErrNotFound = errors.New("not found")
	// Тело запроса больше server.max_body_bytes
	ErrBodyTooLarge = errors.New("request body too large")
)

// ValidationError: ошибка валидации входных данных с расшифровкой по полям.
//
// errors.Is(err, ErrInvalidInput) для неё всегда true, поэтому api слой
// маппит её на 400 так же, как и обычный ErrInvalidInput.
type ValidationError struct {
	// Fields: имя поля (как в JSON) -> сообщение
	Fields map[string]string
}

// NewValidationError создаёт ValidationError из набора ошибок по полям.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
