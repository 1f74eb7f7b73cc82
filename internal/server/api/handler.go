// Package api реализует HTTP-слой сервера bookmarks.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - извлечение пользователя из контекста, куда его кладёт JWT middleware.
//
// Маршруты регистрируются в пакете internal/server/net/http.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: компонент проверки JWT и middleware авторизации.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc: набор сервисов приложения,
// log: логгер,
// verifier: JWT-проверка и middleware авторизации.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
	}
}

// WriteJSON пишет v как JSON с заданным статусом.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	resp := models.ErrorResponse{Error: err.Error()}

	var vErr *serr.ValidationError
	if errors.As(err, &vErr) {
		resp.Error = serr.ErrInvalidInput.Error()
		resp.Fields = vErr.Fields
	}
	WriteJSON(w, status, resp)
}

// writeServiceError маппит доменную ошибку в HTTP-ответ.
//
// Неожиданные ошибки логируются с контекстом, клиенту уходит только
// "internal error" без подробностей.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, op string, fields ...zap.Field) {
	switch {
	case errors.Is(err, serr.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, err)
	case errors.Is(err, serr.ErrBadJSON):
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
	case errors.Is(err, serr.ErrInvalidCredentials):
		WriteError(w, http.StatusUnauthorized, serr.ErrInvalidCredentials)
	case errors.Is(err, serr.ErrUnauthorized), errors.Is(err, serr.ErrInvalidToken):
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
	case errors.Is(err, serr.ErrAlreadyExists):
		WriteError(w, http.StatusConflict, serr.ErrAlreadyExists)
	case errors.Is(err, serr.ErrNotFound):
		WriteError(w, http.StatusNotFound, serr.ErrNotFound)
	default:
		fields = append(fields,
			zap.String("op", op),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		h.Log.Error("request failed", fields...)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
	}
}

// decodeJSON читает тело запроса в dst.
// Пустое тело и битый JSON -> ErrBadJSON, превышение лимита BodyLimit -> ErrBodyTooLarge.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return serr.ErrBadJSON
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return serr.ErrBodyTooLarge
		}
		return serr.ErrBadJSON
	}
	return nil
}

// writeDecodeError отвечает на ошибку decodeJSON: 413 для слишком большого тела, иначе 400.
func writeDecodeError(w http.ResponseWriter, err error) {
	if errors.Is(err, serr.ErrBodyTooLarge) {
		WriteError(w, http.StatusRequestEntityTooLarge, err)
		return
	}
	WriteError(w, http.StatusBadRequest, err)
}

// idParam разбирает {id} из пути, допускаются только положительные целые.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, serr.NewValidationError(map[string]string{"id": "must be a positive integer"})
	}
	return id, nil
}

// currentUser достаёт id пользователя, положенный AuthMiddleware.
func currentUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return 0, false
	}
	return userID, true
}
