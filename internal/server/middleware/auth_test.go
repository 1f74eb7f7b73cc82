package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	sharedModels "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

func testJWT() crypto.JWTConfig {
	return crypto.JWTConfig{
		Issuer:     "issuer",
		Audience:   "aud",
		SigningKey: "supersecretkeysupersecretkey123456",
		AccessTTL:  time.Minute,
	}
}

// Вспомогательная функция для JWT в обход crypto.NewAccessToken
func makeToken(t *testing.T, key, sub, iss, aud string, exp time.Time) string {
	t.Helper()

	claims := crypto.AccessClaims{
		Email: "a@b.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    iss,
			Audience:  []string{aud},
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func serve(v *middleware.JWTVerifier, authHeader string) (*httptest.ResponseRecorder, *models.Identity) {
	var got *models.Identity
	handler := v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.IdentityFromContext(r.Context())
		if ok {
			got = &id
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr, got
}

// Успех
func TestAuthMiddleware_OK(t *testing.T) {
	cfg := testJWT()
	v := middleware.NewJWTVerifier(cfg)

	token, err := crypto.NewAccessToken(42, "a@b.com", cfg)
	require.NoError(t, err)

	rr, id := serve(v, "Bearer "+token)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, id)
	require.Equal(t, int64(42), id.UserID)
	require.Equal(t, "a@b.com", id.Email)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	cfg := testJWT()
	v := middleware.NewJWTVerifier(cfg)
	future := time.Now().Add(time.Minute)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage", "Bearer not.a.jwt"},
		{"wrong key", "Bearer " + makeToken(t, "anotherkeyanotherkeyanotherkey12", "1", "issuer", "aud", future)},
		{"expired", "Bearer " + makeToken(t, cfg.SigningKey, "1", "issuer", "aud", time.Now().Add(-time.Minute))},
		{"wrong issuer", "Bearer " + makeToken(t, cfg.SigningKey, "1", "other", "aud", future)},
		{"wrong audience", "Bearer " + makeToken(t, cfg.SigningKey, "1", "issuer", "other", future)},
		{"non numeric subject", "Bearer " + makeToken(t, cfg.SigningKey, "abc", "issuer", "aud", future)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, id := serve(v, tt.header)
			require.Equal(t, http.StatusUnauthorized, rr.Code)
			require.Nil(t, id, "next handler must not be called")
			require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var body sharedModels.ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			require.NotEmpty(t, body.Error)
		})
	}
}

func TestExtractBearer(t *testing.T) {
	require.Equal(t, "abc", middleware.ExtractBearer("Bearer abc"))
	require.Equal(t, "abc", middleware.ExtractBearer("  bearer   abc "))
	require.Equal(t, "", middleware.ExtractBearer("Bearer"))
	require.Equal(t, "", middleware.ExtractBearer("Token abc"))
	require.Equal(t, "", middleware.ExtractBearer(""))
}

func TestUserIDFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := middleware.UserIDFromContext(req.Context())
	require.False(t, ok)

	ctx := middleware.ContextWithIdentity(req.Context(), models.Identity{UserID: 7, Email: "a@b.com"})
	id, ok := middleware.UserIDFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, int64(7), id)
}
