package service

import (
	"context"
	"testing"
	"time"

	"github.com/procurehub/eproc/internal/accounts/domain"
	"github.com/procurehub/eproc/internal/accounts/store/drivers/sqlite"
	"github.com/procurehub/eproc/pkg/jwtx"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupService(t *testing.T) *RegistryService {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	signer, err := jwtx.NewSigner([]byte("test-secret"), "eproc-test", time.Hour)
	require.NoError(t, err)

	// MinCost keeps the hashing fast; production uses a real cost.
	return &RegistryService{
		Store:      s,
		Signer:     signer,
		BcryptCost: bcrypt.MinCost,
	}
}

func registerInput(suffix string) RegisterInput {
	return RegisterInput{
		Name:            "Pat Example",
		Username:        "pat" + suffix,
		Email:           "pat" + suffix + "@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, registerInput("1"))
	require.NoError(t, err)
	require.NotZero(t, res.Account.ID)
	require.Equal(t, "user", res.Account.Role)
	require.NotEmpty(t, res.Token)
	require.NotEqual(t, "secret1", res.Account.PasswordHash)

	verifier, err := jwtx.NewVerifier([]byte("test-secret"), "eproc-test")
	require.NoError(t, err)
	claims, err := verifier.Verify(res.Token)
	require.NoError(t, err)
	require.Equal(t, res.Account.ID, claims.UserID)
	require.Equal(t, "pat1@example.com", claims.Email)

	auth, err := svc.Authenticate(ctx, "pat1@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, res.Account.ID, auth.Account.ID)
	require.NotEmpty(t, auth.Token)

	// Username works as the identifier too.
	auth, err = svc.Authenticate(ctx, "pat1", "secret1")
	require.NoError(t, err)
	require.Equal(t, res.Account.ID, auth.Account.ID)
}

func TestRegisterNormalizesCase(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	in := registerInput("2")
	in.Email = "Ann@Example.com"
	in.Username = "AnnX"
	res, err := svc.Register(ctx, in)
	require.NoError(t, err)
	require.Equal(t, "ann@example.com", res.Account.Email)
	require.Equal(t, "annx", res.Account.Username)

	// The mixed-case identifier still signs in.
	auth, err := svc.Authenticate(ctx, "ANN@EXAMPLE.COM", "secret1")
	require.NoError(t, err)
	require.Equal(t, res.Account.ID, auth.Account.ID)

	// And re-registering under a different casing conflicts.
	dup := registerInput("2b")
	dup.Email = "ANN@example.COM"
	_, err = svc.Register(ctx, dup)
	require.ErrorIs(t, err, ErrAccountExists)

	dup = registerInput("2c")
	dup.Username = "annx"
	_, err = svc.Register(ctx, dup)
	require.ErrorIs(t, err, ErrAccountExists)
}

func TestRegisterValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	missing := registerInput("3")
	missing.Email = ""
	_, err := svc.Register(ctx, missing)
	require.ErrorIs(t, err, ErrMissingFields)

	mismatch := registerInput("3")
	mismatch.ConfirmPassword = "different"
	_, err = svc.Register(ctx, mismatch)
	require.ErrorIs(t, err, ErrPasswordMismatch)

	short := registerInput("3")
	short.Password = "five5"
	short.ConfirmPassword = "five5"
	_, err = svc.Register(ctx, short)
	require.ErrorIs(t, err, ErrPasswordTooShort)

	// Six characters is the boundary and passes.
	boundary := registerInput("3")
	boundary.Password = "sixsix"
	boundary.ConfirmPassword = "sixsix"
	_, err = svc.Register(ctx, boundary)
	require.NoError(t, err)
}

func TestRegisterOptionalFields(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	in := registerInput("4")
	in.Title = "Procurement Officer"
	in.Department = "Finance"
	in.Role = "admin"
	res, err := svc.Register(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, res.Account.Title)
	require.Equal(t, "Procurement Officer", *res.Account.Title)
	require.NotNil(t, res.Account.Department)
	require.Equal(t, "admin", res.Account.Role)

	bare, err := svc.Register(ctx, registerInput("4b"))
	require.NoError(t, err)
	require.Nil(t, bare.Account.Title)
	require.Nil(t, bare.Account.Department)
}

func TestAuthenticateRejections(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput("5"))
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "", "secret1")
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Authenticate(ctx, "pat5@example.com", "")
	require.ErrorIs(t, err, ErrMissingFields)

	// Unknown identifier and wrong password look identical to the caller.
	_, err = svc.Authenticate(ctx, "nobody@example.com", "secret1")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "pat5@example.com", "wrongpass")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateTouchesLastLogin(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, registerInput("6"))
	require.NoError(t, err)
	require.Nil(t, res.Account.LastLogin)

	_, err = svc.Authenticate(ctx, "pat6@example.com", "secret1")
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, res.Account.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.LastLogin)
	require.WithinDuration(t, time.Now().UTC(), *profile.LastLogin, time.Minute)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := setupService(t)

	_, err := svc.GetProfile(context.Background(), 9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	in := registerInput("7")
	in.Title = "Officer"
	in.Department = "Finance"
	res, err := svc.Register(ctx, in)
	require.NoError(t, err)

	// Name-only update keeps everything else.
	updated, err := svc.UpdateProfile(ctx, res.Account.ID, domain.ProfileUpdate{Name: "Pat Renamed"})
	require.NoError(t, err)
	require.Equal(t, "Pat Renamed", updated.Name)
	require.NotNil(t, updated.Title)
	require.Equal(t, "Officer", *updated.Title)
	require.Equal(t, "user", updated.Role)

	// Sending an empty title stores the empty string rather than skipping it.
	updated, err = svc.UpdateProfile(ctx, res.Account.ID, domain.ProfileUpdate{
		Name:  "Pat Renamed",
		Title: domain.PatchOf(""),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Title)
	require.Equal(t, "", *updated.Title)
	require.NotNil(t, updated.Department)

	_, err = svc.UpdateProfile(ctx, res.Account.ID, domain.ProfileUpdate{Name: "   "})
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.UpdateProfile(ctx, 9999, domain.ProfileUpdate{Name: "Nobody"})
	require.ErrorIs(t, err, ErrNotFound)
}
