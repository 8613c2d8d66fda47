package service

import (
	"context"
	"errors"
	"strings"

	"github.com/procurehub/eproc/internal/accounts/domain"
	"github.com/procurehub/eproc/internal/accounts/metrics"
	"github.com/procurehub/eproc/internal/accounts/store"
	"github.com/procurehub/eproc/pkg/cryptox"
	"github.com/procurehub/eproc/pkg/jwtx"
	"github.com/procurehub/eproc/pkg/slogx"
)

// MinPasswordLength is the smallest password accepted at registration.
const MinPasswordLength = 6

// DefaultRole is assigned when a signup omits the role field.
const DefaultRole = "user"

// RegistryService owns account registration, authentication and profile
// maintenance.
type RegistryService struct {
	Store      store.Store
	Signer     *jwtx.Signer
	BcryptCost int
	Metrics    *metrics.Metrics
}

// RegisterInput captures the validated inputs required to create an account.
type RegisterInput struct {
	Name            string
	Username        string
	Title           string
	Department      string
	Email           string
	Role            string
	Password        string
	ConfirmPassword string
}

// AuthResult pairs a freshly issued token with the account it belongs to.
type AuthResult struct {
	Account domain.Account
	Token   string
}

// Register creates a new account and signs it in. Email and username are
// lowercased before storage so lookups are case-insensitive; uniqueness is
// enforced by the database, not by a read-then-write check.
func (s *RegistryService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	log := slogx.FromContext(ctx)

	name := strings.TrimSpace(in.Name)
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if name == "" || username == "" || email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return AuthResult{}, ErrMissingFields
	}
	if in.Password != in.ConfirmPassword {
		return AuthResult{}, ErrPasswordMismatch
	}
	if len(in.Password) < MinPasswordLength {
		return AuthResult{}, ErrPasswordTooShort
	}

	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = DefaultRole
	}

	hash, err := cryptox.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return AuthResult{}, err
	}

	account := domain.Account{
		Name:         name,
		Username:     strings.ToLower(username),
		Email:        strings.ToLower(email),
		Role:         role,
		PasswordHash: hash,
	}
	if title := strings.TrimSpace(in.Title); title != "" {
		account.Title = &title
	}
	if department := strings.TrimSpace(in.Department); department != "" {
		account.Department = &department
	}

	created, err := s.Store.Accounts().CreateAccount(ctx, account)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return AuthResult{}, ErrAccountExists
		}
		return AuthResult{}, err
	}

	token, err := s.Signer.Issue(created.ID, created.Email, created.Username, created.Role)
	if err != nil {
		return AuthResult{}, err
	}

	log.Info("account registered", "account_id", created.ID, "username", created.Username)
	s.Metrics.IncrementSignups()

	return AuthResult{Account: created, Token: token}, nil
}

// Authenticate verifies an email-or-username identifier against its password
// and issues a token. Unknown identifiers and wrong passwords are reported
// identically so the response never reveals which half was wrong.
func (s *RegistryService) Authenticate(ctx context.Context, identifier, password string) (AuthResult, error) {
	log := slogx.FromContext(ctx)

	identifier = strings.ToLower(strings.TrimSpace(identifier))
	if identifier == "" || password == "" {
		return AuthResult{}, ErrMissingFields
	}

	account, err := s.Store.Accounts().GetAccountByLogin(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Metrics.IncrementSigninFailures()
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	if cryptox.VerifyPassword(password, account.PasswordHash) != nil {
		log.Warn("login rejected", "account_id", account.ID)
		s.Metrics.IncrementSigninFailures()
		return AuthResult{}, ErrInvalidCredentials
	}

	if err := s.Store.Accounts().TouchLastLogin(ctx, account.ID); err != nil {
		return AuthResult{}, err
	}

	token, err := s.Signer.Issue(account.ID, account.Email, account.Username, account.Role)
	if err != nil {
		return AuthResult{}, err
	}

	s.Metrics.IncrementSignins()
	return AuthResult{Account: account, Token: token}, nil
}

// GetProfile fetches an account by id.
func (s *RegistryService) GetProfile(ctx context.Context, id int64) (domain.Account, error) {
	account, err := s.Store.Accounts().GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrNotFound
		}
		return domain.Account{}, err
	}
	return account, nil
}

// UpdateProfile applies a partial profile update. Name is mandatory; the
// optional fields only change when the caller actually sent them.
func (s *RegistryService) UpdateProfile(ctx context.Context, id int64, upd domain.ProfileUpdate) (domain.Account, error) {
	upd.Name = strings.TrimSpace(upd.Name)
	if upd.Name == "" {
		return domain.Account{}, ErrMissingFields
	}

	account, err := s.Store.Accounts().UpdateProfile(ctx, id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrNotFound
		}
		return domain.Account{}, err
	}

	s.Metrics.IncrementProfileUpdates()
	return account, nil
}
