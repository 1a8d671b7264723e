//go:build integration

package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/mwhite7112/edulookup/internal/db"
)

// SetupDB starts a throwaway Postgres container, applies migrations, and
// returns an open connection. Everything is torn down via t.Cleanup.
func SetupDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("edulookup"),
		postgres.WithUsername("edulookup"),
		postgres.WithPassword("edulookup"),
		postgres.BasicWaitStrategies(),
		postgres.WithSQLDriver("postgres"),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	sqlDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.Eventually(t, func() bool { return sqlDB.PingContext(ctx) == nil }, 30*time.Second, 250*time.Millisecond)
	require.NoError(t, db.Migrate(sqlDB))

	return sqlDB
}
