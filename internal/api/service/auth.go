package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/feroxapp/ferox/internal/api/domain"
	"github.com/feroxapp/ferox/internal/api/store"
	"github.com/feroxapp/ferox/pkg/cryptox"
	"github.com/feroxapp/ferox/pkg/jwtx"
	"github.com/feroxapp/ferox/pkg/slogx"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords so
// responses never reveal which half failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AccountInactiveError is returned when the credentials are correct but the
// account has not been activated. It carries what the client needs to finish
// activation through the bot.
type AccountInactiveError struct {
	AccountID      string
	ActivationCode string
}

func (e *AccountInactiveError) Error() string {
	return fmt.Sprintf("account %s is not active", e.AccountID)
}

type AuthService struct {
	Store store.Store
	Keys  *jwtx.KeyManager

	Issuer   string
	TokenTTL time.Duration
}

// Login verifies credentials and returns a signed session token with the
// authenticated account.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, domain.Account, error) {
	log := slogx.FromContext(ctx)

	// 1. Look up the account. Unknown usernames still burn a hash check so
	// response timing stays flat.
	account, err := s.Store.Accounts().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = cryptox.VerifyPassword(password, dummyHash)
			return "", domain.Account{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch account", slog.Any("error", err))
		return "", domain.Account{}, err
	}

	// 2. Verify the password
	if err := cryptox.VerifyPassword(password, account.PasswordHash); err != nil {
		log.Warn("login failed", slog.String("username", username))
		return "", domain.Account{}, ErrInvalidCredentials
	}

	// 3. Inactive accounts can't log in; hand back what activation needs
	if !account.IsActive {
		inactiveErr := &AccountInactiveError{AccountID: account.ID}
		if account.ActivationCode != nil {
			inactiveErr.ActivationCode = *account.ActivationCode
		}
		return "", domain.Account{}, inactiveErr
	}

	// 4. Mint the session token
	claims := jwtx.NewSessionClaims(
		account.ID,
		account.Username,
		s.Issuer,
		s.TokenTTL,
		time.Now().UTC(),
	)

	signer := s.Keys.GetSigner()
	if signer == nil {
		return "", domain.Account{}, errors.New("no signing key available")
	}

	token, err := signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return "", domain.Account{}, err
	}

	log.Info("login succeeded", slog.String("account_id", account.ID))

	return token, account, nil
}

// dummyHash is a valid argon2id hash of a throwaway value, verified on
// unknown-username logins to keep timing consistent.
const dummyHash = "$argon2id$v=19$m=19456,t=2,p=1$AAAAAAAAAAAAAAAAAAAAAA$St4kc9PIMXDKmy4BWdvwF9HVU+bXNTWGTLvLTSJv5vQ"
