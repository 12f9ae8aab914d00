package store

import (
	"context"
	"errors"
	"time"

	"github.com/feroxapp/ferox/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories are exposed as methods so transactional
// scoping stays explicit.
type Store interface {
	Accounts() Accounts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle multi-step writes.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// Create inserts a new account (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when a unique column collides.
	Create(ctx context.Context, a domain.Account) error

	// GetByID returns an account by id.
	GetByID(ctx context.Context, id string) (domain.Account, error)

	// GetByUsername resolves case-insensitively.
	GetByUsername(ctx context.Context, username string) (domain.Account, error)

	// GetByEmail resolves by exact email.
	GetByEmail(ctx context.Context, email string) (domain.Account, error)

	// GetByActivationCode returns the account holding the given code.
	GetByActivationCode(ctx context.Context, code string) (domain.Account, error)

	// GetByDiscordID returns the account linked to the given Discord id.
	GetByDiscordID(ctx context.Context, discordID string) (domain.Account, error)

	// List returns all accounts ordered by creation (id order).
	List(ctx context.Context) ([]domain.Account, error)

	// Update applies a typed patch and bumps updated_at. A zero patch is a
	// no-op. Returns ErrNotFound when the account does not exist and
	// ErrAlreadyExists when a unique column collides.
	Update(ctx context.Context, id string, p domain.AccountPatch) error

	// ClearExpiredRecoveryCodes nulls out recovery fields whose expiry has
	// passed and reports how many rows were touched.
	ClearExpiredRecoveryCodes(ctx context.Context, now time.Time) (int64, error)
}
