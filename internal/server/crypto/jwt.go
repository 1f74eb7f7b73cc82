// Package crypto содержит криптографические примитивы,
// используемые сервером закладок.
//
// В частности, пакет отвечает за:
//   - генерацию, подпись и проверку JWT access-токенов;
//   - хэширование и проверку паролей (argon2id или bcrypt).
package crypto

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
)

// JWTConfig описывает параметры генерации и проверки JWT access-токена.
type JWTConfig struct {
	// Issuer: значение поля iss (кто выдал токен). Пустое, не проверяем.
	Issuer string
	// Audience: значение поля aud (для кого предназначен токен). Пустое, не проверяем.
	Audience string
	// SigningKey: секретный ключ для подписи токена (HS256).
	// Должен быть достаточно длинным и случайным.
	SigningKey string
	// AccessTTL: срок жизни access-токена.
	AccessTTL time.Duration
}

// AccessClaims: claims access-токена: стандартные + email пользователя.
type AccessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewAccessToken создаёт и подписывает JWT access-токен для пользователя.
//
// Токен содержит:
//   - sub (userID в десятичном виде)
//   - email
//   - iat (IssuedAt)
//   - exp (ExpiresAt)
//   - iss/aud, если заданы в конфиге
//
// Используется алгоритм подписи HS256.
func NewAccessToken(userID int64, email string, cfg JWTConfig) (string, error) {
	now := time.Now()

	claims := AccessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
		},
	}
	if cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{cfg.Audience}
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}

// ParseAccessToken проверяет подпись, срок жизни, issuer и audience токена
// и возвращает личность пользователя.
//
// Любая проблема с токеном (подпись, алгоритм, формат, срок, subject)
// возвращается как ErrInvalidToken: наружу причины не различаем.
func ParseAccessToken(tokenStr string, cfg JWTConfig) (models.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	claims := &AccessClaims{}
	_, err := jwt.NewParser(opts...).ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.SigningKey), nil
	})
	if err != nil {
		return models.Identity{}, serr.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(strings.TrimSpace(claims.Subject), 10, 64)
	if err != nil || userID <= 0 {
		return models.Identity{}, serr.ErrInvalidToken
	}

	return models.Identity{UserID: userID, Email: claims.Email}, nil
}
