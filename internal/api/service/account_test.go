package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AccountService{Store: st}

	t.Run("creates inactive account with activation code", func(t *testing.T) {
		account, err := svc.CreateAccount(ctx, "alice", "password123", "alice@example.com")
		require.NoError(t, err)

		require.NotEmpty(t, account.ID)
		require.Equal(t, "alice", account.Username)
		require.False(t, account.IsActive)
		require.NotNil(t, account.ActivationCode)
		require.Len(t, *account.ActivationCode, 8)
		require.Regexp(t, "^[0-9A-F]+$", *account.ActivationCode)
		require.NotNil(t, account.Email)
		require.Equal(t, "alice@example.com", *account.Email)

		// Password is stored hashed, never verbatim.
		require.NotEqual(t, "password123", account.PasswordHash)
		require.Contains(t, account.PasswordHash, "$argon2id$")
	})

	t.Run("rejects duplicate username regardless of case", func(t *testing.T) {
		_, err := svc.CreateAccount(ctx, "ALICE", "password123", "")
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := svc.CreateAccount(ctx, "bob", "password123", "alice@example.com")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("rejects short usernames and passwords", func(t *testing.T) {
		_, err := svc.CreateAccount(ctx, "ab", "password123", "")
		require.ErrorIs(t, err, ErrInvalidAccountRequest)

		_, err = svc.CreateAccount(ctx, "charlie", "short", "")
		require.ErrorIs(t, err, ErrInvalidAccountRequest)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := svc.CreateAccount(ctx, "dave", "password123", "not-an-email")
		require.ErrorIs(t, err, ErrInvalidAccountRequest)
	})

	t.Run("email is optional", func(t *testing.T) {
		account, err := svc.CreateAccount(ctx, "erin", "password123", "")
		require.NoError(t, err)
		require.Nil(t, account.Email)
	})
}

func TestResolveAccount(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AccountService{Store: st}

	created := createTestAccount(t, st, "frank", "password123", "frank@example.com")

	t.Run("resolves by username", func(t *testing.T) {
		account, err := svc.ResolveAccount(ctx, "frank")
		require.NoError(t, err)
		require.Equal(t, created.ID, account.ID)
	})

	t.Run("resolves by email", func(t *testing.T) {
		account, err := svc.ResolveAccount(ctx, "frank@example.com")
		require.NoError(t, err)
		require.Equal(t, created.ID, account.ID)
	})

	t.Run("username wins over email shape", func(t *testing.T) {
		// An account whose username looks like another account's email.
		other := createTestAccount(t, st, "frank@example.org", "password123", "")

		account, err := svc.ResolveAccount(ctx, "frank@example.org")
		require.NoError(t, err)
		require.Equal(t, other.ID, account.ID)
	})

	t.Run("unknown handle", func(t *testing.T) {
		_, err := svc.ResolveAccount(ctx, "nobody")
		require.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestCheckStatus(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AccountService{Store: st}

	account := createTestAccount(t, st, "grace", "password123", "")

	status, err := svc.CheckStatus(ctx, account.ID)
	require.NoError(t, err)
	require.False(t, status.IsActive)
	require.False(t, status.DiscordLinked)

	_, err = svc.CheckStatus(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestListAccounts(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AccountService{Store: st}

	createTestAccount(t, st, "henry", "password123", "")
	createTestAccount(t, st, "iris", "password123", "")

	accounts, err := svc.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	// ULID ids sort by creation time.
	require.Equal(t, "henry", accounts[0].Username)
	require.Equal(t, "iris", accounts[1].Username)
}
