package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/config"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/crypto"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
)

// AuthService реализует регистрацию и вход.
//
// Ответственность:
//   - регистрация пользователей
//   - аутентификация (вход)
//   - выпуск access токенов
type AuthService struct {
	users UsersRepo

	hasher crypto.PasswordHasher
	jwt    crypto.JWTConfig
	// dummyHash проверяется для неизвестного email, чтобы время ответа
	// не отличалось от случая с неверным паролем
	dummyHash string
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	s := &AuthService{
		users:  users,
		hasher: newPasswordHasher(cfg.Password),
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
	s.dummyHash = newDummyHash(s.hasher)
	return s
}

// newDummyHash хэширует случайный пароль теми же параметрами, что и настоящие.
// При ошибке возвращает пустую строку, тогда Verify просто вернёт ошибку формата.
func newDummyHash(h crypto.PasswordHasher) string {
	hash, err := h.Hash("bookmarks-dummy-password")
	if err != nil {
		return ""
	}
	return hash
}

// JWT возвращает параметры подписи, их же использует middleware для проверки.
func (s *AuthService) JWT() crypto.JWTConfig {
	return s.jwt
}

func newPasswordHasher(cfg config.PasswordConfig) crypto.PasswordHasher {
	if strings.EqualFold(cfg.Hasher, "bcrypt") {
		return crypto.BcryptHasher{Cost: cfg.Bcrypt.Cost}
	}
	return crypto.Argon2Hasher{Params: crypto.Argon2Params{
		Time:      cfg.Argon2.Time,
		MemoryKiB: cfg.Argon2.MemoryKiB,
		Threads:   cfg.Argon2.Threads,
		KeyLen:    cfg.Argon2.KeyLen,
		SaltLen:   cfg.Argon2.SaltLen,
	}}
}

// Signup регистрирует нового пользователя и сразу выдаёт ему access токен.
//
// Валидация:
//   - email обязателен и должен быть валидным
//   - пароль обязателен
//
// Ошибки:
//   - ErrInvalidInput (*ValidationError) при некорректных данных
//   - ErrAlreadyExists если email уже зарегистрирован
func (s *AuthService) Signup(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return "", err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("%w: hash password: %v", serr.ErrInternal, err)
	}

	userID, err := s.users.Create(ctx, email, hash)
	if err != nil {
		return "", err
	}
	return s.issue(userID, email)
}

// Signin аутентифицирует пользователя и выдаёт access токен.
//
// Поведение:
//   - не раскрывает факт существования email
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
func (s *AuthService) Signin(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return "", err
	}
	// получаем юзера по email
	userID, hash, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			_, _ = s.hasher.Verify(password, s.dummyHash)
			return "", serr.ErrInvalidCredentials
		}
		return "", err
	}
	// проверяем пароль
	ok, err := s.hasher.Verify(password, hash)
	if err != nil {
		return "", fmt.Errorf("%w: verify password: %v", serr.ErrInternal, err)
	}
	if !ok {
		return "", serr.ErrInvalidCredentials
	}
	return s.issue(userID, email)
}

func (s *AuthService) issue(userID int64, email string) (string, error) {
	access, err := crypto.NewAccessToken(userID, email, s.jwt)
	if err != nil {
		return "", fmt.Errorf("%w: sign token: %v", serr.ErrInternal, err)
	}
	return access, nil
}
