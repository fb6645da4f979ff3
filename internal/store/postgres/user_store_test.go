package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/0xfrait/auth-service/internal/store/postgres"
	"github.com/0xfrait/auth-service/internal/store/storetest"
)

// newPool connects to the database named by TEST_PG_CONN_URL, skipping the
// test when none is configured, and ensures the users table exists.
func newPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	connURL := os.Getenv("TEST_PG_CONN_URL")
	if connURL == "" {
		t.Skip("TEST_PG_CONN_URL not set; skipping postgres integration tests")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, connURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx))

	// Mirror of migrations/00001_create_users.sql so the suite can run
	// against a scratch database.
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			email        TEXT PRIMARY KEY,
			password     TEXT NOT NULL,
			requires_2fa BOOLEAN NOT NULL DEFAULT FALSE
		)`)
	require.NoError(t, err)

	return pool
}

func TestUserStore(t *testing.T) {
	pool := newPool(t)
	storetest.RunUserStoreSuite(t, postgres.NewUserStore(pool))
}
