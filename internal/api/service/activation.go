package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/feroxapp/ferox/internal/api/domain"
	"github.com/feroxapp/ferox/internal/api/store"
	"github.com/feroxapp/ferox/pkg/cryptox"
	"github.com/feroxapp/ferox/pkg/slogx"
)

var (
	ErrActivationCodeNotFound = errors.New("activation code not found")
	ErrAccountAlreadyActive   = errors.New("account already active")
	ErrDiscordAlreadyLinked   = errors.New("discord account already linked")
)

type ActivationService struct {
	Store store.Store
}

// GenerateActivationCode replaces the activation code on an inactive account.
// Active accounts have nothing to activate, so they are rejected.
func (s *ActivationService) GenerateActivationCode(ctx context.Context, accountID string) (string, error) {
	log := slogx.FromContext(ctx)

	// 1. Fetch the account
	account, err := s.Store.Accounts().GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrAccountNotFound
		}
		log.Error("failed to fetch account", slog.Any("error", err))
		return "", err
	}

	// 2. Only inactive accounts can hold an activation code
	if account.IsActive {
		return "", ErrAccountAlreadyActive
	}

	// 3. Generate and persist a fresh code, retrying once on collision
	var code string
	for attempt := range 2 {
		code, err = cryptox.GenerateActivationCode()
		if err != nil {
			log.Error("failed to generate activation code", slog.Any("error", err))
			return "", err
		}

		err = s.Store.Accounts().Update(ctx, accountID, domain.AccountPatch{
			ActivationCode: domain.Set(code),
		})
		if err == nil {
			break
		}
		if errors.Is(err, store.ErrAlreadyExists) && attempt == 0 {
			log.Warn("activation code collision, retrying", slog.String("account_id", accountID))
			continue
		}
		log.Error("failed to persist activation code", slog.Any("error", err))
		return "", err
	}

	log.Info("activation code regenerated", slog.String("account_id", accountID))

	return code, nil
}

// RedeemActivationCode activates the account holding the code and attaches
// the redeeming Discord identity. The whole redemption is atomic: the code is
// cleared, the account flipped active, and the Discord fields set together.
func (s *ActivationService) RedeemActivationCode(
	ctx context.Context,
	code string,
	identity domain.DiscordIdentity,
) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	if code == "" || identity.ID == "" {
		return domain.Account{}, ErrActivationCodeNotFound
	}

	var account domain.Account

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Resolve the code to its holder
		var err error
		account, err = tx.Accounts().GetByActivationCode(ctx, code)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrActivationCodeNotFound
			}
			log.Error("failed to look up activation code", slog.Any("error", err))
			return err
		}

		// 2. Reject if the Discord account is already linked elsewhere
		existing, err := tx.Accounts().GetByDiscordID(ctx, identity.ID)
		if err == nil && existing.ID != account.ID {
			return ErrDiscordAlreadyLinked
		}
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to check discord link", slog.Any("error", err))
			return err
		}

		// 3. Activate and attach the identity, clearing the code
		active := true
		patch := domain.AccountPatch{
			IsActive:        &active,
			ActivationCode:  domain.Clear[string](),
			DiscordID:       domain.Set(identity.ID),
			DiscordUsername: domain.Set(identity.Username),
		}
		if identity.Avatar != "" {
			patch.DiscordAvatar = domain.Set(identity.Avatar)
		}

		if err := tx.Accounts().Update(ctx, account.ID, patch); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDiscordAlreadyLinked
			}
			log.Error("failed to activate account", slog.Any("error", err))
			return err
		}

		account, err = tx.Accounts().GetByID(ctx, account.ID)
		return err
	})
	if err != nil {
		return domain.Account{}, err
	}

	log.Info("account activated",
		slog.String("account_id", account.ID),
		slog.String("discord_id", identity.ID),
	)

	return account, nil
}
