package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	testDBConnString string
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		ctx := context.Background()
		var connStr string
		connStr, terminate = setupContainer(ctx)
		testDBConnString = connStr
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}
}

func TestNewPool_RejectsBadDSN(t *testing.T) {
	_, err := NewPool(context.Background(), PoolConfig{ConnString: "postgres://%zz"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestNewPool_Sizing(t *testing.T) {
	requireDB(t)

	t.Run("CASE 1: BEST CASE - explicit limits", func(t *testing.T) {
		pool, err := NewPool(context.Background(), PoolConfig{
			ConnString:  testDBConnString,
			MaxConns:    6,
			MaxIdleTime: time.Minute,
			MaxLifetime: 5 * time.Minute,
		})
		require.NoError(t, err)
		defer pool.Close()

		cfg := pool.Config()
		assert.Equal(t, int32(6), cfg.MaxConns)
		assert.Equal(t, DefaultMinConnections, cfg.MinConns)
		assert.Equal(t, time.Minute, cfg.MaxConnIdleTime)
		assert.Equal(t, 5*time.Minute, cfg.MaxConnLifetime)
	})

	t.Run("CASE 2: min connections never exceed max", func(t *testing.T) {
		pool, err := NewPool(context.Background(), PoolConfig{ConnString: testDBConnString, MaxConns: 1})
		require.NoError(t, err)
		defer pool.Close()

		assert.Equal(t, int32(1), pool.Config().MinConns)
	})
}

// Snapshot writes run one statement per connection; a failing statement must
// hand its connection back.
func TestPool_ReleasesAfterFailedStatements(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	pool, err := NewPool(ctx, PoolConfig{ConnString: testDBConnString, MaxConns: 2})
	require.NoError(t, err)
	defer pool.Close()

	for i := 0; i < 10; i++ {
		_, err := pool.Exec(ctx, "UPDATE pool_stats_missing SET total_kai_staked = 0")
		assert.Error(t, err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	conn, err := pool.Acquire(waitCtx)
	require.NoError(t, err, "pool exhausted by failed statements")
	conn.Release()
	assert.Zero(t, pool.Stat().AcquiredConns())
}

// TestMigrate_Postgres applies the embedded migrations twice and checks the pool seed
func TestMigrate_Postgres(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	pool, err := NewPool(ctx, PoolConfig{ConnString: testDBConnString, MaxConns: 5})
	require.NoError(t, err)
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	require.NoError(t, Migrate(ctx, db, DriverPostgres))
	require.NoError(t, Migrate(ctx, db, DriverPostgres), "second run is a no-op")

	var staked, earned int64
	require.NoError(t, db.QueryRowContext(ctx,
		"SELECT total_kai_staked, total_kai_earned FROM pool_stats WHERE id = 1").Scan(&staked, &earned))
	assert.Equal(t, int64(10000000), staked)
	assert.Equal(t, int64(1234567), earned)
}
