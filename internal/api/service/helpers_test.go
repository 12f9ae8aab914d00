package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/feroxapp/ferox/internal/api/domain"
	"github.com/feroxapp/ferox/internal/api/store/drivers/sqlite"
	"github.com/feroxapp/ferox/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// createTestAccount inserts an account through the service so it carries a
// real hash and activation code.
func createTestAccount(t *testing.T, st *sqlite.Store, username, password, email string) domain.Account {
	t.Helper()

	svc := &AccountService{Store: st}
	account, err := svc.CreateAccount(context.Background(), username, password, email)
	require.NoError(t, err)
	return account
}
