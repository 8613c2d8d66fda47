package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/procurehub/eproc/internal/accounts/domain"
	"github.com/procurehub/eproc/internal/accounts/store"

	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func testAccount(suffix string) domain.Account {
	return domain.Account{
		Name:         "Test User",
		Username:     "user" + suffix,
		Email:        "user" + suffix + "@example.com",
		Role:         "user",
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhashnotarea",
	}
}

func TestCreateAndFetchAccount(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	repo := s.Accounts()

	created, err := repo.CreateAccount(ctx, testAccount("1"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, "user1", created.Username)
	require.Equal(t, "user", created.Role)
	require.Nil(t, created.Title)
	require.Nil(t, created.Department)
	require.Nil(t, created.LastLogin)

	byID, err := repo.GetAccountByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Email, byID.Email)

	_, err = repo.GetAccountByID(ctx, created.ID+100)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetAccountByLogin(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	repo := s.Accounts()

	created, err := repo.CreateAccount(ctx, testAccount("2"))
	require.NoError(t, err)

	byEmail, err := repo.GetAccountByLogin(ctx, "user2@example.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)

	byUsername, err := repo.GetAccountByLogin(ctx, "user2")
	require.NoError(t, err)
	require.Equal(t, created.ID, byUsername.ID)

	_, err = repo.GetAccountByLogin(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateAccountConflicts(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	repo := s.Accounts()

	_, err := repo.CreateAccount(ctx, testAccount("3"))
	require.NoError(t, err)

	dupEmail := testAccount("3b")
	dupEmail.Email = "user3@example.com"
	_, err = repo.CreateAccount(ctx, dupEmail)
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	dupUsername := testAccount("3c")
	dupUsername.Username = "user3"
	_, err = repo.CreateAccount(ctx, dupUsername)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUpdateProfilePresence(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	repo := s.Accounts()

	seed := testAccount("4")
	seed.Title = ptr("Officer")
	seed.Department = ptr("Finance")
	created, err := repo.CreateAccount(ctx, seed)
	require.NoError(t, err)

	// Name-only update leaves the optional columns alone.
	updated, err := repo.UpdateProfile(ctx, created.ID, domain.ProfileUpdate{Name: "Renamed"})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.NotNil(t, updated.Title)
	require.Equal(t, "Officer", *updated.Title)
	require.NotNil(t, updated.Department)
	require.Equal(t, "user", updated.Role)

	// Empty string is a value, not an omission.
	updated, err = repo.UpdateProfile(ctx, created.ID, domain.ProfileUpdate{
		Name:  "Renamed",
		Title: domain.PatchOf(""),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Title)
	require.Equal(t, "", *updated.Title)

	// Explicit null clears title; absent department stays.
	updated, err = repo.UpdateProfile(ctx, created.ID, domain.ProfileUpdate{
		Name:  "Renamed",
		Title: domain.Patch{Set: true},
	})
	require.NoError(t, err)
	require.Nil(t, updated.Title)
	require.NotNil(t, updated.Department)

	updated, err = repo.UpdateProfile(ctx, created.ID, domain.ProfileUpdate{
		Name: "Renamed",
		Role: domain.PatchOf("admin"),
	})
	require.NoError(t, err)
	require.Equal(t, "admin", updated.Role)

	_, err = repo.UpdateProfile(ctx, created.ID+100, domain.ProfileUpdate{Name: "Nobody"})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestTouchLastLogin(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	repo := s.Accounts()

	created, err := repo.CreateAccount(ctx, testAccount("5"))
	require.NoError(t, err)
	require.Nil(t, created.LastLogin)

	require.NoError(t, repo.TouchLastLogin(ctx, created.ID))

	fetched, err := repo.GetAccountByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.LastLogin)
	require.WithinDuration(t, time.Now().UTC(), *fetched.LastLogin, time.Minute)
}

func ptr(s string) *string { return &s }
