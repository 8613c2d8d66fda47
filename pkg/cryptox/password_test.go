package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Tests use bcrypt.MinCost so the suite stays fast; the work factor does
// not change any of the verify semantics under test.

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"empty password", ""},
		{"unicode password", "пароль密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, bcrypt.MinCost)
			require.NoError(t, err)
			require.NotEmpty(t, hash)
			require.True(t, strings.HasPrefix(hash, "$2a$"),
				"hash should be in bcrypt modular crypt format")

			require.NoError(t, VerifyPassword(tt.password, hash))
		})
	}
}

func TestHashPasswordDefaultCost(t *testing.T) {
	hash, err := HashPassword("secret1", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, DefaultCost, cost)
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	require.NotEqual(t, h1, h2, "each hash should carry a fresh salt")
	require.NoError(t, VerifyPassword("secret1", h1))
	require.NoError(t, VerifyPassword("secret1", h2))
}

func TestVerifyPasswordMismatch(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	require.ErrorIs(t, VerifyPassword("secret2", hash), ErrMismatch)
	require.ErrorIs(t, VerifyPassword("", hash), ErrMismatch)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty hash", ""},
		{"garbage", "not-a-bcrypt-hash"},
		{"truncated", "$2a$12$tooshort"},
		{"wrong scheme", "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, VerifyPassword("secret1", tt.hash), ErrMismatch)
		})
	}
}
