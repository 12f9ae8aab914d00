package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/feroxapp/ferox/internal/api/domain"
	"github.com/feroxapp/ferox/internal/api/notify"
	"github.com/feroxapp/ferox/internal/api/store"
	"github.com/feroxapp/ferox/pkg/cryptox"
	"github.com/feroxapp/ferox/pkg/slogx"
)

var (
	ErrNoLinkedDiscord     = errors.New("account has no linked discord")
	ErrInvalidRecoveryCode = errors.New("invalid or expired recovery code")
)

// DefaultRecoveryCodeTTL is how long a recovery code stays redeemable.
const DefaultRecoveryCodeTTL = 15 * time.Minute

const recoveryCodeDigits = 6

type RecoveryService struct {
	Store    store.Store
	Notifier notify.RecoveryNotifier

	// CodeTTL overrides DefaultRecoveryCodeTTL when positive.
	CodeTTL time.Duration
}

func (s *RecoveryService) ttl() time.Duration {
	if s.CodeTTL > 0 {
		return s.CodeTTL
	}
	return DefaultRecoveryCodeTTL
}

// StartRecovery issues a fresh recovery code for the account matching the
// given username or email and delivers it over Discord. The code is persisted
// before delivery is attempted, so a failed DM leaves a retryable state.
func (s *RecoveryService) StartRecovery(ctx context.Context, usernameOrEmail string) error {
	log := slogx.FromContext(ctx)

	// 1. Resolve the account (username first, then email)
	accounts := &AccountService{Store: s.Store}
	account, err := accounts.ResolveAccount(ctx, usernameOrEmail)
	if err != nil {
		return err
	}

	// 2. Recovery is delivered via Discord DM, so a link is required
	if !account.Linked() {
		return ErrNoLinkedDiscord
	}

	// 3. Generate the code; a new request overwrites any pending one
	code, err := cryptox.GenerateNumericCode(recoveryCodeDigits)
	if err != nil {
		log.Error("failed to generate recovery code", slog.Any("error", err))
		return err
	}
	expires := time.Now().UTC().Add(s.ttl())

	err = s.Store.Accounts().Update(ctx, account.ID, domain.AccountPatch{
		RecoveryCode:        domain.Set(code),
		RecoveryCodeExpires: domain.Set(expires),
	})
	if err != nil {
		log.Error("failed to persist recovery code", slog.Any("error", err))
		return err
	}

	// 4. Deliver. Failure here leaves the stored code intact.
	if err := s.Notifier.SendRecoveryCode(ctx, *account.DiscordID, code); err != nil {
		log.Warn("recovery code delivery failed",
			slog.String("account_id", account.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("recovery started",
		slog.String("account_id", account.ID),
		slog.Time("expires", expires),
	)

	return nil
}

// ValidateRecoveryCode checks a code without consuming it. A mismatch or an
// expired code is reported as valid=false, not as an error.
func (s *RecoveryService) ValidateRecoveryCode(ctx context.Context, usernameOrEmail, code string) (bool, error) {
	accounts := &AccountService{Store: s.Store}
	account, err := accounts.ResolveAccount(ctx, usernameOrEmail)
	if err != nil {
		return false, err
	}

	return account.RecoveryCodeValid(code, time.Now().UTC()), nil
}

// ResetPassword consumes a valid recovery code and replaces the password in
// one transaction, clearing both recovery fields.
func (s *RecoveryService) ResetPassword(ctx context.Context, usernameOrEmail, code, newPassword string) error {
	log := slogx.FromContext(ctx)

	if len(newPassword) < minPasswordLength {
		return ErrInvalidAccountRequest
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}

	var accountID string

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		accounts := &AccountService{Store: tx}
		account, err := accounts.ResolveAccount(ctx, usernameOrEmail)
		if err != nil {
			return err
		}

		if !account.RecoveryCodeValid(code, time.Now().UTC()) {
			return ErrInvalidRecoveryCode
		}

		accountID = account.ID

		return tx.Accounts().Update(ctx, account.ID, domain.AccountPatch{
			PasswordHash:        &hash,
			RecoveryCode:        domain.Clear[string](),
			RecoveryCodeExpires: domain.Clear[time.Time](),
		})
	})
	if err != nil {
		return err
	}

	log.Info("password reset", slog.String("account_id", accountID))

	return nil
}
