package service

import "errors"

var (
	ErrMissingFields      = errors.New("missing_fields")
	ErrPasswordMismatch   = errors.New("password_mismatch")
	ErrPasswordTooShort   = errors.New("password_too_short")
	ErrAccountExists      = errors.New("account_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrNotFound           = errors.New("not_found")
)
