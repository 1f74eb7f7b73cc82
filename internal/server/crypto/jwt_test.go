package crypto_test

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	crypt "github.com/IvanChernomyrdin/go-bookmarks/internal/server/crypto"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
)

func testJWTConfig() crypt.JWTConfig {
	return crypt.JWTConfig{
		Issuer:     "bookmarks",
		Audience:   "bookmarks-cli",
		SigningKey: "supersecretkeysupersecretkey123456",
		AccessTTL:  5 * time.Minute,
	}
}

func TestNewAccessToken_Success(t *testing.T) {
	t.Parallel()
	cfg := testJWTConfig()

	tokenStr, err := crypt.NewAccessToken(42, "a@b.com", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokenStr == "" {
		t.Fatal("expected non-empty token string")
	}

	// Парсим напрямую библиотекой, чтобы проверить формат claims
	parsed, err := jwt.ParseWithClaims(
		tokenStr,
		&crypt.AccessClaims{},
		func(token *jwt.Token) (any, error) {
			if token.Method != jwt.SigningMethodHS256 {
				t.Fatalf("unexpected signing method: %v", token.Method)
			}
			return []byte(cfg.SigningKey), nil
		},
	)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}

	claims, ok := parsed.Claims.(*crypt.AccessClaims)
	if !ok {
		t.Fatal("claims type assertion failed")
	}
	if claims.Subject != strconv.Itoa(42) {
		t.Fatalf("expected subject 42, got %q", claims.Subject)
	}
	if claims.Email != "a@b.com" {
		t.Fatalf("expected email a@b.com, got %q", claims.Email)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %q, got %q", cfg.Issuer, claims.Issuer)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != cfg.Audience {
		t.Fatalf("expected audience %q, got %v", cfg.Audience, claims.Audience)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) <= 0 {
		t.Fatal("token already expired")
	}
}

// Токен выпущенный и проверенный одним конфигом
func TestParseAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()
	cfg := testJWTConfig()

	tokenStr, err := crypt.NewAccessToken(7, "user@mail.com", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := crypt.ParseAccessToken(tokenStr, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.UserID != 7 || id.Email != "user@mail.com" {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestParseAccessToken_WrongKey(t *testing.T) {
	t.Parallel()
	cfg := testJWTConfig()

	tokenStr, _ := crypt.NewAccessToken(1, "a@b.com", cfg)

	other := cfg
	other.SigningKey = "anothersecretanothersecretanother1"

	if _, err := crypt.ParseAccessToken(tokenStr, other); !errors.Is(err, serr.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseAccessToken_Expired(t *testing.T) {
	t.Parallel()
	cfg := testJWTConfig()
	cfg.AccessTTL = -time.Minute

	tokenStr, _ := crypt.NewAccessToken(1, "a@b.com", cfg)

	if _, err := crypt.ParseAccessToken(tokenStr, cfg); !errors.Is(err, serr.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseAccessToken_WrongIssuerAndAudience(t *testing.T) {
	t.Parallel()
	cfg := testJWTConfig()
	tokenStr, _ := crypt.NewAccessToken(1, "a@b.com", cfg)

	badIss := cfg
	badIss.Issuer = "someone-else"
	if _, err := crypt.ParseAccessToken(tokenStr, badIss); !errors.Is(err, serr.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for issuer, got %v", err)
	}

	badAud := cfg
	badAud.Audience = "web"
	if _, err := crypt.ParseAccessToken(tokenStr, badAud); !errors.Is(err, serr.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for audience, got %v", err)
	}
}

// subject не число
func TestParseAccessToken_NonNumericSubject(t *testing.T) {
	t.Parallel()
	cfg := testJWTConfig()

	claims := jwt.RegisteredClaims{
		Subject:   "user-123",
		Issuer:    cfg.Issuer,
		Audience:  jwt.ClaimStrings{cfg.Audience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SigningKey))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := crypt.ParseAccessToken(tokenStr, cfg); !errors.Is(err, serr.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

// Токен подписанный другим алгоритмом (none) не принимаем
func TestParseAccessToken_RejectsNoneAlg(t *testing.T) {
	t.Parallel()
	cfg := testJWTConfig()

	claims := jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := crypt.ParseAccessToken(tokenStr, cfg); !errors.Is(err, serr.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseAccessToken_Garbage(t *testing.T) {
	t.Parallel()
	if _, err := crypt.ParseAccessToken("not.a.token", testJWTConfig()); !errors.Is(err, serr.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
