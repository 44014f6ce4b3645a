package schema

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

func openMemory(t *testing.T) database.Store {
	t.Helper()
	store, err := database.Open(context.Background(), &config.DatabaseConfig{Type: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func countSuperAdmins(t *testing.T, store database.Store) int64 {
	t.Helper()
	row, err := store.Get(context.Background(), "SELECT COUNT(*) AS count FROM users WHERE role = 'super_admin'")
	require.NoError(t, err)
	return row.Int64("count")
}

func TestBootstrapper_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := openMemory(t)
	hasher := auth.NewBcryptPasswordHasher(bcrypt.MinCost)
	b := NewBootstrapper(store, hasher, config.BootstrapConfig{AdminUsername: "admin", AdminEmail: "admin@company.com"}, logger.NewNopLogger())

	first := b.Run(ctx)
	assert.True(t, first.OK())
	assert.True(t, first.AdminCreated)
	require.NotEmpty(t, first.GeneratedPassword)

	second := b.Run(ctx)
	assert.True(t, second.OK())
	assert.False(t, second.AdminCreated)
	assert.Empty(t, second.GeneratedPassword)

	assert.Equal(t, int64(1), countSuperAdmins(t, store))

	row, err := store.Get(ctx, "SELECT * FROM users WHERE username = ?", "admin")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "admin@company.com", row.String("email"))
	assert.Equal(t, "System", row.String("first_name"))
	assert.Equal(t, "Administrator", row.String("last_name"))
	assert.True(t, row.Bool("active"))
	assert.Equal(t, int64(0), row.Int64("failed_login_attempts"))
	assert.True(t, hasher.Verify(first.GeneratedPassword, row.String("password")))
	assert.False(t, hasher.Verify("admin123", row.String("password")))
}

func TestBootstrapper_ConfiguredPassword(t *testing.T) {
	ctx := context.Background()
	store := openMemory(t)
	hasher := auth.NewBcryptPasswordHasher(bcrypt.MinCost)
	b := NewBootstrapper(store, hasher, config.BootstrapConfig{AdminPassword: "Operator-Chosen-1"}, logger.NewNopLogger())

	report := b.Run(ctx)
	require.True(t, report.AdminCreated)
	assert.Empty(t, report.GeneratedPassword)

	row, err := store.Get(ctx, "SELECT password FROM users WHERE username = 'admin'")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("Operator-Chosen-1", row.String("password")))
}

// failingStore fails every statement whose SQL contains match.
type failingStore struct {
	database.Store
	match string
}

func (s *failingStore) Run(ctx context.Context, query string, args ...any) (database.Result, error) {
	if strings.Contains(query, s.match) {
		return database.Result{}, errors.New("permission denied")
	}
	return s.Store.Run(ctx, query, args...)
}

func TestBootstrapper_ContinuesPastFailures(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{Store: openMemory(t), match: "CREATE INDEX"}
	b := NewBootstrapper(store, auth.NewBcryptPasswordHasher(bcrypt.MinCost), config.BootstrapConfig{}, logger.NewNopLogger())

	report := b.Run(ctx)

	assert.False(t, report.OK())
	assert.Len(t, report.Failed, 3)
	for _, f := range report.Failed {
		assert.True(t, strings.HasPrefix(f.Name, "idx_"), f.Name)
	}
	assert.True(t, report.AdminCreated)
	assert.Equal(t, int64(1), countSuperAdmins(t, store))
}

func TestBootstrapper_SeedFailureIsReported(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{Store: openMemory(t), match: "CREATE TABLE IF NOT EXISTS users"}
	b := NewBootstrapper(store, auth.NewBcryptPasswordHasher(bcrypt.MinCost), config.BootstrapConfig{}, logger.NewNopLogger())

	report := b.Run(ctx)

	assert.False(t, report.AdminCreated)
	names := make([]string, 0, len(report.Failed))
	for _, f := range report.Failed {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "users")
	assert.Contains(t, names, "seed_admin")
}

func TestStatementsFor(t *testing.T) {
	for _, b := range []database.Backend{database.BackendSQLite, database.BackendPostgres, database.BackendSQLServer, database.BackendMySQL} {
		stmts := statementsFor(b)
		require.NotEmpty(t, stmts, b)
		assert.Equal(t, "users", stmts[0].Name, b)
		for _, st := range stmts {
			assert.NotContains(t, st.SQL, "?", "%s %s", b, st.Name)
		}
	}
}
