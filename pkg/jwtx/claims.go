package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the session token lifetime applied when no TTL is
// configured.
const DefaultTokenTTL = 24 * time.Hour

// Claims is the payload embedded in every session token. The custom field
// names are part of the wire contract with existing clients, so keep them
// stable.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the numeric account id the token was issued for.
	UserID int64 `json:"userId"`

	// Email is the normalized (lowercase) account email.
	Email string `json:"email"`

	// Username is the normalized (lowercase) account username.
	Username string `json:"username"`

	// Role is the account role at issuance time.
	Role string `json:"role"`
}

// NewClaims builds minimally-correct claims for an account session.
func NewClaims(userID int64, email, username, role, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
		UserID:   userID,
		Email:    email,
		Username: username,
		Role:     role,
	}
}
