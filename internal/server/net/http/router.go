// Package http реализует маршрутизацию HTTP-слоя сервера bookmarks.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - выполняет проверку JWT access-токенов;
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/api"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/middleware"
)

// Options настройки роутера, берутся из конфига сервера.
type Options struct {
	Docs         bool  // отдавать /swagger/*
	MaxBodyBytes int64 // лимит тела запроса, 0: без лимита
}

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты аутентификации под префиксом /auth;
//   - middleware логирования для всех запросов;
//   - группу защищённых JWT эндпоинтов /users и /bookmarks.
func NewRouter(h *api.Handler, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	r.Use(middleware.BodyLimit(opts.MaxBodyBytes))

	// добавляем swagger
	if opts.Docs {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}
	r.Get("/ping", h.Ping)

	// Публичные пути
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/signin", h.Signin)
	})
	// защищены пути
	r.Group(func(r chi.Router) {
		// проверка access токена
		r.Use(h.Verifier.AuthMiddleware())

		r.Get("/users/me", h.Me)
		r.Patch("/users", h.EditUser)

		r.Route("/bookmarks", func(r chi.Router) {
			r.Post("/bookmark", h.CreateBookmark) // создание закладки
			r.Get("/", h.ListBookmarks)           // все закладки пользователя
			r.Get("/{id}", h.GetBookmark)
			r.Patch("/{id}", h.EditBookmark) // меняются только переданные поля
			r.Delete("/{id}", h.DeleteBookmark)
		})
	})

	return r
}
