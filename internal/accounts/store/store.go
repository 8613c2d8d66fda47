package store

import (
	"context"
	"errors"

	"github.com/procurehub/eproc/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. Uniqueness of email and username is enforced by
// the drivers' UNIQUE constraints, not by pre-check queries, so concurrent
// duplicate registrations surface as ErrAlreadyExists from exactly one
// writer.
type Store interface {
	Accounts() Accounts

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Accounts interface {
	// CreateAccount inserts a new account and returns the stored row with
	// its assigned id. Unique-constraint violations on email or username
	// map to ErrAlreadyExists.
	CreateAccount(ctx context.Context, a domain.Account) (domain.Account, error)

	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id int64) (domain.Account, error)

	// GetAccountByLogin matches the normalized identifier against either
	// the email or the username column, in a single lookup.
	GetAccountByLogin(ctx context.Context, identifier string) (domain.Account, error)

	// UpdateProfile applies a presence-aware partial update and returns
	// the updated row.
	UpdateProfile(ctx context.Context, id int64, upd domain.ProfileUpdate) (domain.Account, error)

	// TouchLastLogin stamps last_login with the current time.
	TouchLastLogin(ctx context.Context, id int64) error
}
