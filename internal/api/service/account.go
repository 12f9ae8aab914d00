package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/feroxapp/ferox/internal/api/domain"
	"github.com/feroxapp/ferox/internal/api/store"
	"github.com/feroxapp/ferox/pkg/cryptox"
	"github.com/feroxapp/ferox/pkg/idx"
	"github.com/feroxapp/ferox/pkg/slogx"
)

var (
	ErrInvalidAccountRequest = errors.New("invalid account request")
	ErrAccountNotFound       = errors.New("account not found")
	ErrUsernameTaken         = errors.New("username already taken")
	ErrEmailTaken            = errors.New("email already in use")
)

const (
	minUsernameLength = 3
	maxUsernameLength = 32
	minPasswordLength = 8
)

type AccountService struct {
	Store store.Store
}

// AccountStatus is the lightweight view returned by CheckStatus.
type AccountStatus struct {
	IsActive      bool
	DiscordLinked bool
}

// CreateAccount registers a new inactive account with a fresh activation code.
func (s *AccountService) CreateAccount(
	ctx context.Context,
	username string,
	password string,
	email string,
) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return domain.Account{}, ErrInvalidAccountRequest
	}
	if len(password) < minPasswordLength {
		return domain.Account{}, ErrInvalidAccountRequest
	}

	email = strings.TrimSpace(email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return domain.Account{}, ErrInvalidAccountRequest
		}
	}

	// 2. Check the username is available (case-insensitive)
	if _, err := s.Store.Accounts().GetByUsername(ctx, username); err == nil {
		return domain.Account{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check username availability", slog.Any("error", err))
		return domain.Account{}, err
	}

	// 3. Check the email is available when provided
	if email != "" {
		if _, err := s.Store.Accounts().GetByEmail(ctx, email); err == nil {
			return domain.Account{}, ErrEmailTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to check email availability", slog.Any("error", err))
			return domain.Account{}, err
		}
	}

	// 4. Hash the password
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Account{}, err
	}

	account := domain.Account{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		IsActive:     false,
	}
	if email != "" {
		account.Email = &email
	}

	// 5. Insert with a fresh activation code, retrying once if the short
	// code collides with an existing one.
	for attempt := range 2 {
		code, err := cryptox.GenerateActivationCode()
		if err != nil {
			log.Error("failed to generate activation code", slog.Any("error", err))
			return domain.Account{}, err
		}
		account.ActivationCode = &code

		err = s.Store.Accounts().Create(ctx, account)
		if err == nil {
			break
		}
		if errors.Is(err, store.ErrAlreadyExists) && attempt == 0 {
			log.Warn("activation code collision, retrying", slog.String("account_id", account.ID))
			continue
		}
		log.Error("failed to create account", slog.Any("error", err))
		return domain.Account{}, err
	}

	log.Info("account created",
		slog.String("account_id", account.ID),
		slog.String("username", account.Username),
	)

	return account, nil
}

// GetAccountByID fetches an account by id.
func (s *AccountService) GetAccountByID(ctx context.Context, accountID string) (domain.Account, error) {
	account, err := s.Store.Accounts().GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrAccountNotFound
		}
		return domain.Account{}, err
	}
	return account, nil
}

// ListAccounts returns all accounts in creation order.
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.Store.Accounts().List(ctx)
}

// ResolveAccount looks up by username first, falling back to email. This
// matches how recovery and login identify people across both handles.
func (s *AccountService) ResolveAccount(ctx context.Context, usernameOrEmail string) (domain.Account, error) {
	usernameOrEmail = strings.TrimSpace(usernameOrEmail)
	if usernameOrEmail == "" {
		return domain.Account{}, ErrAccountNotFound
	}

	account, err := s.Store.Accounts().GetByUsername(ctx, usernameOrEmail)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Account{}, err
	}

	account, err = s.Store.Accounts().GetByEmail(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrAccountNotFound
		}
		return domain.Account{}, err
	}
	return account, nil
}

// CheckStatus reports whether an account is active and Discord-linked.
func (s *AccountService) CheckStatus(ctx context.Context, accountID string) (AccountStatus, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return AccountStatus{}, err
	}

	return AccountStatus{
		IsActive:      account.IsActive,
		DiscordLinked: account.Linked(),
	}, nil
}
