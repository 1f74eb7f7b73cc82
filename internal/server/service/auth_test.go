package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/config"
	crypt "github.com/IvanChernomyrdin/go-bookmarks/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/service"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Auth.Issuer = "bookmarks"
	cfg.Auth.AccessTTL = time.Minute
	cfg.Auth.JWT.SigningKey = "supersecretkeysupersecretkey123456"
	// дешёвые параметры, чтобы тесты не тормозили
	cfg.Password.Argon2 = config.Argon2Config{Time: 1, MemoryKiB: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}
	return cfg
}

// создаём сервис
func newAuthService(t *testing.T, cfg *config.Config) (*service.AuthService, *mocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepo(ctrl)

	return service.NewAuthService(users, cfg), users
}

func argon2Hash(t *testing.T, cfg *config.Config, password string) string {
	t.Helper()
	hash, err := crypt.HashPassword(password, crypt.Argon2Params{
		Time:      cfg.Password.Argon2.Time,
		MemoryKiB: cfg.Password.Argon2.MemoryKiB,
		Threads:   cfg.Password.Argon2.Threads,
		KeyLen:    cfg.Password.Argon2.KeyLen,
		SaltLen:   cfg.Password.Argon2.SaltLen,
	})
	require.NoError(t, err)
	return hash
}

// Успех: email нормализуется, токен проверяется
func TestAuthService_Signup_OK(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	svc, users := newAuthService(t, cfg)

	var storedHash string
	users.EXPECT().
		Create(ctx, "a@b.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, hash string) (int64, error) {
			storedHash = hash
			return 1, nil
		})

	token, err := svc.Signup(ctx, "  A@B.com ", "x")
	require.NoError(t, err)

	id, err := crypt.ParseAccessToken(token, svc.JWT())
	require.NoError(t, err)
	require.Equal(t, int64(1), id.UserID)
	require.Equal(t, "a@b.com", id.Email)

	// пароль в открытом виде не хранится
	require.NotEqual(t, "x", storedHash)
	ok, err := crypt.VerifyPassword("x", storedHash)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAuthService_Signup_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		field    string
	}{
		{"empty email", "", "x", "email"},
		{"not an email", "not-an-email", "x", "email"},
		{"empty password", "a@b.com", "", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newAuthService(t, testConfig())

			_, err := svc.Signup(context.Background(), tt.email, tt.password)
			require.ErrorIs(t, err, serr.ErrInvalidInput)

			var vErr *serr.ValidationError
			require.True(t, errors.As(err, &vErr))
			require.Contains(t, vErr.Fields, tt.field)
		})
	}
}

// Такой пользователь уже есть
func TestAuthService_Signup_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t, testConfig())

	users.EXPECT().
		Create(ctx, "a@b.com", gomock.Any()).
		Return(int64(0), serr.ErrAlreadyExists)

	_, err := svc.Signup(ctx, "a@b.com", "x")
	require.ErrorIs(t, err, serr.ErrAlreadyExists)
}

// Успех
func TestAuthService_Signin_OK(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	svc, users := newAuthService(t, cfg)

	users.EXPECT().
		GetByEmail(ctx, "a@b.com").
		Return(int64(5), argon2Hash(t, cfg, "x"), nil)

	token, err := svc.Signin(ctx, "A@b.com", "x")
	require.NoError(t, err)

	id, err := crypt.ParseAccessToken(token, svc.JWT())
	require.NoError(t, err)
	require.Equal(t, int64(5), id.UserID)
}

// Неверный пароль и неизвестный email неотличимы
func TestAuthService_Signin_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()

	svc, users := newAuthService(t, cfg)
	users.EXPECT().
		GetByEmail(ctx, "a@b.com").
		Return(int64(5), argon2Hash(t, cfg, "right"), nil)
	_, wrongPassErr := svc.Signin(ctx, "a@b.com", "wrong")

	svc2, users2 := newAuthService(t, cfg)
	users2.EXPECT().
		GetByEmail(ctx, "nobody@b.com").
		Return(int64(0), "", serr.ErrNotFound)
	_, unknownErr := svc2.Signin(ctx, "nobody@b.com", "wrong")

	require.ErrorIs(t, wrongPassErr, serr.ErrInvalidCredentials)
	require.ErrorIs(t, unknownErr, serr.ErrInvalidCredentials)
	require.Equal(t, wrongPassErr.Error(), unknownErr.Error())
}

// Ошибка хранилища пробрасывается как есть
func TestAuthService_Signin_RepoError(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t, testConfig())

	users.EXPECT().
		GetByEmail(ctx, "a@b.com").
		Return(int64(0), "", serr.ErrInternal)

	_, err := svc.Signin(ctx, "a@b.com", "x")
	require.ErrorIs(t, err, serr.ErrInternal)
}

// Битый хэш в базе -> внутренняя ошибка
func TestAuthService_Signin_CorruptedHash(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t, testConfig())

	users.EXPECT().
		GetByEmail(ctx, "a@b.com").
		Return(int64(1), "garbage", nil)

	_, err := svc.Signin(ctx, "a@b.com", "x")
	require.ErrorIs(t, err, serr.ErrInternal)
}

func TestAuthService_BcryptHasher(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.Password.Hasher = "bcrypt"
	cfg.Password.Bcrypt.Cost = bcrypt.MinCost

	svc, users := newAuthService(t, cfg)

	var stored string
	users.EXPECT().
		Create(ctx, "a@b.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, hash string) (int64, error) {
			stored = hash
			return 1, nil
		})
	_, err := svc.Signup(ctx, "a@b.com", "x")
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("x")))

	users.EXPECT().
		GetByEmail(ctx, "a@b.com").
		DoAndReturn(func(context.Context, string) (int64, string, error) { return 1, stored, nil })
	_, err = svc.Signin(ctx, "a@b.com", "x")
	require.NoError(t, err)
}
