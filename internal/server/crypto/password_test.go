package crypto_test

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	crypt "github.com/IvanChernomyrdin/go-bookmarks/internal/server/crypto"
)

func defaultParams() crypt.Argon2Params {
	return crypt.Argon2Params{
		Time:      1,
		MemoryKiB: 32 * 1024,
		Threads:   1,
		KeyLen:    32,
		SaltLen:   16,
	}
}

// Хэширование и успешная проверка
func TestHashAndVerifyPassword_OK(t *testing.T) {
	params := defaultParams()
	password := "super-secret-password"

	hash, err := crypt.HashPassword(password, params)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := crypt.VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if !ok {
		t.Fatal("expected password to be valid")
	}
}

// Неверный пароль
func TestVerifyPassword_InvalidPassword(t *testing.T) {
	hash, err := crypt.HashPassword("correct-password", defaultParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := crypt.VerifyPassword("wrong-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if ok {
		t.Fatal("expected password to be invalid")
	}
}

// Пустой пароль
func TestHashPassword_EmptyPassword(t *testing.T) {
	_, err := crypt.HashPassword("", defaultParams())
	if err == nil {
		t.Fatal("expected error for empty password")
	}
}

// Битый формат хэша
func TestVerifyPassword_InvalidFormat(t *testing.T) {
	_, err := crypt.VerifyPassword("password", "not-a-valid-hash")
	if err == nil {
		t.Fatal("expected error for invalid hash format")
	}
}

// Проверка: соль разная (хэши разные)
func TestHashPassword_DifferentSalt(t *testing.T) {
	params := defaultParams()

	h1, _ := crypt.HashPassword("same-password", params)
	h2, _ := crypt.HashPassword("same-password", params)

	if h1 == h2 {
		t.Fatal("expected different hashes for same password")
	}
}

// Оба хэшера удовлетворяют одному интерфейсу и ведут себя одинаково
func TestPasswordHashers(t *testing.T) {
	hashers := map[string]crypt.PasswordHasher{
		"argon2id": crypt.Argon2Hasher{Params: defaultParams()},
		"bcrypt":   crypt.BcryptHasher{Cost: bcrypt.MinCost},
	}

	for name, h := range hashers {
		t.Run(name, func(t *testing.T) {
			hash, err := h.Hash("x")
			if err != nil {
				t.Fatalf("Hash error: %v", err)
			}
			if hash == "x" {
				t.Fatal("hash must not equal plaintext")
			}

			ok, err := h.Verify("x", hash)
			if err != nil || !ok {
				t.Fatalf("expected valid password, ok=%v err=%v", ok, err)
			}

			ok, err = h.Verify("y", hash)
			if err != nil || ok {
				t.Fatalf("expected mismatch without error, ok=%v err=%v", ok, err)
			}

			if _, err := h.Hash(""); err == nil {
				t.Fatal("expected error for empty password")
			}
		})
	}
}
