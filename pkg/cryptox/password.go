package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor applied when callers pass a
// non-positive cost. Hashing time roughly doubles per increment, so bump
// this with care.
const DefaultCost = 12

// ErrMismatch reports that a password does not verify against the stored
// hash. Malformed hashes are folded into this error on purpose so callers
// cannot tell a corrupt record apart from a wrong password.
var ErrMismatch = errors.New("cryptox: password does not match")

// HashPassword returns a salted bcrypt hash of the password. Each call
// produces a different encoded hash (bcrypt generates its own salt), but
// every one of them verifies against the original plaintext.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt
// hash in constant time. It returns ErrMismatch for any failure, including
// a hash that cannot be parsed.
func VerifyPassword(password, encodedHash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)); err != nil {
		return ErrMismatch
	}
	return nil
}
