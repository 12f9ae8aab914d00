package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/feroxapp/ferox/internal/api/domain"
	"github.com/feroxapp/ferox/internal/api/notify"
	"github.com/feroxapp/ferox/internal/api/store/drivers/sqlite"
	"github.com/feroxapp/ferox/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

// fakeNotifier records deliveries and can be told to fail.
type fakeNotifier struct {
	sent []struct{ discordID, code string }
	fail bool
}

func (f *fakeNotifier) SendRecoveryCode(_ context.Context, discordID, code string) error {
	if f.fail {
		return fmt.Errorf("%w: gateway down", notify.ErrDeliveryFailed)
	}
	f.sent = append(f.sent, struct{ discordID, code string }{discordID, code})
	return nil
}

// linkedAccount creates an account and activates it with a Discord identity.
func linkedAccount(t *testing.T, st *sqlite.Store, username, discordID string) domain.Account {
	t.Helper()

	account := createTestAccount(t, st, username, "password123", username+"@example.com")

	activation := &ActivationService{Store: st}
	linked, err := activation.RedeemActivationCode(context.Background(), *account.ActivationCode,
		domain.DiscordIdentity{ID: discordID, Username: username + "#0"})
	require.NoError(t, err)
	return linked
}

func TestStartRecovery(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	notifier := &fakeNotifier{}
	svc := &RecoveryService{Store: st, Notifier: notifier}

	account := linkedAccount(t, st, "alice", "1001")

	t.Run("persists and delivers a six digit code", func(t *testing.T) {
		require.NoError(t, svc.StartRecovery(ctx, "alice"))

		require.Len(t, notifier.sent, 1)
		require.Equal(t, "1001", notifier.sent[0].discordID)
		require.Len(t, notifier.sent[0].code, 6)

		fresh, err := st.Accounts().GetByID(ctx, account.ID)
		require.NoError(t, err)
		require.NotNil(t, fresh.RecoveryCode)
		require.Equal(t, notifier.sent[0].code, *fresh.RecoveryCode)
		require.NotNil(t, fresh.RecoveryCodeExpires)
		require.WithinDuration(t, time.Now().Add(DefaultRecoveryCodeTTL), *fresh.RecoveryCodeExpires, time.Minute)
	})

	t.Run("resolves by email too", func(t *testing.T) {
		require.NoError(t, svc.StartRecovery(ctx, "alice@example.com"))
		require.Len(t, notifier.sent, 2)
	})

	t.Run("new request overwrites the pending code", func(t *testing.T) {
		require.NoError(t, svc.StartRecovery(ctx, "alice"))

		fresh, err := st.Accounts().GetByID(ctx, account.ID)
		require.NoError(t, err)
		require.Equal(t, notifier.sent[len(notifier.sent)-1].code, *fresh.RecoveryCode)
	})

	t.Run("requires a linked discord", func(t *testing.T) {
		createTestAccount(t, st, "bob", "password123", "")
		require.ErrorIs(t, svc.StartRecovery(ctx, "bob"), ErrNoLinkedDiscord)
	})

	t.Run("unknown handle", func(t *testing.T) {
		require.ErrorIs(t, svc.StartRecovery(ctx, "nobody"), ErrAccountNotFound)
	})

	t.Run("delivery failure keeps the code retryable", func(t *testing.T) {
		notifier.fail = true
		defer func() { notifier.fail = false }()

		err := svc.StartRecovery(ctx, "alice")
		require.ErrorIs(t, err, notify.ErrDeliveryFailed)

		// The stored code survives the failed DM.
		fresh, err := st.Accounts().GetByID(ctx, account.ID)
		require.NoError(t, err)
		require.NotNil(t, fresh.RecoveryCode)
	})
}

func TestValidateRecoveryCode(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	notifier := &fakeNotifier{}
	svc := &RecoveryService{Store: st, Notifier: notifier}

	account := linkedAccount(t, st, "carol", "2002")
	require.NoError(t, svc.StartRecovery(ctx, "carol"))
	code := notifier.sent[0].code

	t.Run("valid code", func(t *testing.T) {
		ok, err := svc.ValidateRecoveryCode(ctx, "carol", code)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("wrong code is false, not an error", func(t *testing.T) {
		ok, err := svc.ValidateRecoveryCode(ctx, "carol", "000000")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("expired code is false", func(t *testing.T) {
		past := time.Now().UTC().Add(-time.Minute)
		require.NoError(t, st.Accounts().Update(ctx, account.ID, domain.AccountPatch{
			RecoveryCodeExpires: domain.Set(past),
		}))

		ok, err := svc.ValidateRecoveryCode(ctx, "carol", code)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("unknown handle is an error", func(t *testing.T) {
		_, err := svc.ValidateRecoveryCode(ctx, "nobody", code)
		require.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	notifier := &fakeNotifier{}
	svc := &RecoveryService{Store: st, Notifier: notifier}

	account := linkedAccount(t, st, "dave", "3003")
	require.NoError(t, svc.StartRecovery(ctx, "dave"))
	code := notifier.sent[0].code

	t.Run("rejects invalid code", func(t *testing.T) {
		err := svc.ResetPassword(ctx, "dave", "999999", "newpassword1")
		require.ErrorIs(t, err, ErrInvalidRecoveryCode)
	})

	t.Run("rejects short password", func(t *testing.T) {
		err := svc.ResetPassword(ctx, "dave", code, "short")
		require.ErrorIs(t, err, ErrInvalidAccountRequest)
	})

	t.Run("replaces the password and clears recovery state", func(t *testing.T) {
		require.NoError(t, svc.ResetPassword(ctx, "dave", code, "newpassword1"))

		fresh, err := st.Accounts().GetByID(ctx, account.ID)
		require.NoError(t, err)
		require.Nil(t, fresh.RecoveryCode)
		require.Nil(t, fresh.RecoveryCodeExpires)
		require.NoError(t, cryptox.VerifyPassword("newpassword1", fresh.PasswordHash))
		require.Error(t, cryptox.VerifyPassword("password123", fresh.PasswordHash))
	})

	t.Run("code is single use", func(t *testing.T) {
		err := svc.ResetPassword(ctx, "dave", code, "anotherpassword1")
		require.ErrorIs(t, err, ErrInvalidRecoveryCode)
	})
}

func TestHousekeepingClearsExpiredCodes(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	notifier := &fakeNotifier{}
	svc := &RecoveryService{Store: st, Notifier: notifier}

	expired := linkedAccount(t, st, "erin", "4004")
	require.NoError(t, svc.StartRecovery(ctx, "erin"))
	require.NoError(t, st.Accounts().Update(ctx, expired.ID, domain.AccountPatch{
		RecoveryCodeExpires: domain.Set(time.Now().UTC().Add(-time.Minute)),
	}))

	pending := linkedAccount(t, st, "fred", "5005")
	require.NoError(t, svc.StartRecovery(ctx, "fred"))

	n, err := st.Accounts().ClearExpiredRecoveryCodes(ctx, time.Now().UTC())
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	gone, err := st.Accounts().GetByID(ctx, expired.ID)
	require.NoError(t, err)
	require.Nil(t, gone.RecoveryCode)
	require.Nil(t, gone.RecoveryCodeExpires)

	kept, err := st.Accounts().GetByID(ctx, pending.ID)
	require.NoError(t, err)
	require.NotNil(t, kept.RecoveryCode)
}
