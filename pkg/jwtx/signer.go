package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSecret reports a signer or verifier constructed without key material.
var ErrNoSecret = errors.New("jwtx: signing secret is required")

// Signer issues HS256-signed session tokens using a single process-wide
// secret. Tokens are stateless: everything needed to verify them travels in
// the token itself.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewSigner builds a Signer. The secret must be non-empty; ttl falls back
// to DefaultTokenTTL when non-positive.
func NewSigner(secret []byte, issuer string, ttl time.Duration) (*Signer, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Signer{secret: secret, issuer: issuer, ttl: ttl}, nil
}

// TTL returns the configured token lifetime.
func (s *Signer) TTL() time.Duration { return s.ttl }

// Issue signs a fresh token for the given account identity.
func (s *Signer) Issue(userID int64, email, username, role string) (string, error) {
	claims := NewClaims(userID, email, username, role, s.issuer, s.ttl, time.Now().UTC())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
