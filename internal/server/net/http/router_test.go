package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/api"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/config"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/middleware"
	srvhttp "github.com/IvanChernomyrdin/go-bookmarks/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/repository/sqlite"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/service"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

// newTestRouter собирает сервер целиком поверх SQLite в памяти.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.DB = config.DBConfig{Driver: config.DriverSQLite, DSN: ":memory:"}
	cfg.Auth.Issuer = "bookmarks"
	cfg.Auth.AccessTTL = time.Minute
	cfg.Auth.JWT.SigningKey = "supersecretkeysupersecretkey123456"
	cfg.Password.Hasher = "bcrypt"
	cfg.Password.Bcrypt.Cost = bcrypt.MinCost
	require.NoError(t, cfg.Validate())

	db, err := config.OpenSQLite(ctx, cfg.DB)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.CreateSchema(ctx, db))

	svc := service.NewServices(service.Repositories{
		Users:     sqlite.NewUsersRepository(db),
		Bookmarks: sqlite.NewBookmarksRepository(db),
		Health:    sqlite.NewHealthRepository(db),
	}, cfg)

	h := api.NewHandler(svc, logger.NewNop(), middleware.NewJWTVerifier(svc.Auth.JWT()))
	return srvhttp.NewRouter(h, srvhttp.Options{MaxBodyBytes: cfg.Server.MaxBodyBytes})
}

func do(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), rec.Body.String())
	return v
}

func signup(t *testing.T, router http.Handler, email string) string {
	t.Helper()
	rec := do(t, router, http.MethodPost, "/auth/signup", "", models.AuthRequest{Email: email, Password: "x"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[models.TokenResponse](t, rec).AccessToken
}

// Основной сценарий: регистрация, вход, создание, чтение, удаление.
func TestRouter_Scenario(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/auth/signup", "", models.AuthRequest{Email: "a@b.com", Password: "x"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotEmpty(t, decode[models.TokenResponse](t, rec).AccessToken)

	rec = do(t, router, http.MethodPost, "/auth/signin", "", models.AuthRequest{Email: "a@b.com", Password: "x"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token := decode[models.TokenResponse](t, rec).AccessToken
	// Мини-проверка, что access похож на JWT (три части через точку)
	require.Equal(t, 2, strings.Count(token, "."))

	rec = do(t, router, http.MethodGet, "/bookmarks", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	rec = do(t, router, http.MethodPost, "/bookmarks/bookmark", token, models.CreateBookmarkRequest{Title: "t", Link: "l"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[models.Bookmark](t, rec)
	require.Equal(t, int64(1), created.ID)

	rec = do(t, router, http.MethodGet, "/bookmarks", token, nil)
	require.Len(t, decode[[]models.Bookmark](t, rec), 1)

	rec = do(t, router, http.MethodGet, "/bookmarks/1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[models.Bookmark](t, rec)
	require.Equal(t, "t", got.Title)
	require.Equal(t, "l", got.Link)
	require.Nil(t, got.Description)

	rec = do(t, router, http.MethodDelete, "/bookmarks/1", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/bookmarks/1", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodGet, "/bookmarks", token, nil)
	require.Empty(t, decode[[]models.Bookmark](t, rec))
}

// Закладки A не видны и недоступны B.
func TestRouter_OwnerIsolation(t *testing.T) {
	router := newTestRouter(t)

	alice := signup(t, router, "alice@b.com")
	bob := signup(t, router, "bob@b.com")

	rec := do(t, router, http.MethodPost, "/bookmarks/bookmark", alice, models.CreateBookmarkRequest{Title: "t", Link: "l"})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode[models.Bookmark](t, rec).ID
	path := fmt.Sprintf("/bookmarks/%d", id)

	rec = do(t, router, http.MethodGet, "/bookmarks", bob, nil)
	require.Empty(t, decode[[]models.Bookmark](t, rec))

	require.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, path, bob, nil).Code)
	require.Equal(t, http.StatusNotFound, do(t, router, http.MethodPatch, path, bob, map[string]string{"title": "x"}).Code)
	require.Equal(t, http.StatusNotFound, do(t, router, http.MethodDelete, path, bob, nil).Code)

	rec = do(t, router, http.MethodGet, path, alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "t", decode[models.Bookmark](t, rec).Title)
}

func TestRouter_Auth(t *testing.T) {
	router := newTestRouter(t)
	signup(t, router, "a@b.com")

	// повторная регистрация
	rec := do(t, router, http.MethodPost, "/auth/signup", "", models.AuthRequest{Email: "A@B.com", Password: "y"})
	require.Equal(t, http.StatusConflict, rec.Code)

	// неверный пароль и неизвестный email неотличимы
	wrong := do(t, router, http.MethodPost, "/auth/signin", "", models.AuthRequest{Email: "a@b.com", Password: "nope"})
	unknown := do(t, router, http.MethodPost, "/auth/signin", "", models.AuthRequest{Email: "z@b.com", Password: "nope"})
	require.Equal(t, http.StatusUnauthorized, wrong.Code)
	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, wrong.Body.String(), unknown.Body.String())

	// валидация с расшифровкой по полям
	rec = do(t, router, http.MethodPost, "/auth/signup", "", models.AuthRequest{Email: "not-an-email"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errResp := decode[models.ErrorResponse](t, rec)
	require.Contains(t, errResp.Fields, "email")
	require.Contains(t, errResp.Fields, "password")

	// пустое тело
	req := httptest.NewRequest(http.MethodPost, "/auth/signin", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/users/me"},
		{http.MethodPatch, "/users"},
		{http.MethodPost, "/bookmarks/bookmark"},
		{http.MethodGet, "/bookmarks"},
		{http.MethodGet, "/bookmarks/1"},
		{http.MethodPatch, "/bookmarks/1"},
		{http.MethodDelete, "/bookmarks/1"},
	}
	for _, rt := range routes {
		rec := do(t, router, rt.method, rt.path, "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, rt.method+" "+rt.path)

		rec = do(t, router, rt.method, rt.path, "garbage", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, rt.method+" "+rt.path)
	}
}

func TestRouter_Profile(t *testing.T) {
	router := newTestRouter(t)
	token := signup(t, router, "a@b.com")
	signup(t, router, "taken@b.com")

	rec := do(t, router, http.MethodGet, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "password")
	me := decode[models.Profile](t, rec)
	require.Equal(t, "a@b.com", me.Email)
	require.Nil(t, me.FirstName)

	rec = do(t, router, http.MethodPatch, "/users", token, map[string]string{"firstName": "Ann"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	p := decode[models.Profile](t, rec)
	require.Equal(t, "Ann", *p.FirstName)
	require.Nil(t, p.LastName)

	rec = do(t, router, http.MethodPatch, "/users", token, map[string]string{"email": "taken@b.com"})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodPatch, "/users", token, map[string]string{"email": "bad"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_EditBookmark(t *testing.T) {
	router := newTestRouter(t)
	token := signup(t, router, "a@b.com")

	rec := do(t, router, http.MethodPost, "/bookmarks/bookmark", token,
		map[string]string{"title": "t", "description": "d", "link": "l"})
	require.Equal(t, http.StatusCreated, rec.Code)

	// меняем только title
	rec = do(t, router, http.MethodPatch, "/bookmarks/1", token, map[string]string{"title": "t2"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	b := decode[models.Bookmark](t, rec)
	require.Equal(t, "t2", b.Title)
	require.Equal(t, "d", *b.Description)
	require.Equal(t, "l", b.Link)

	rec = do(t, router, http.MethodPatch, "/bookmarks/1", token, map[string]string{"link": ""})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/bookmarks/bookmark", token, map[string]string{"title": "t"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	for _, path := range []string{"/bookmarks/abc", "/bookmarks/0", "/bookmarks/-1"} {
		require.Equal(t, http.StatusBadRequest, do(t, router, http.MethodGet, path, token, nil).Code, path)
	}
	require.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/bookmarks/99", token, nil).Code)
}

func TestRouter_Ping(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/ping", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}
