//go:build integration

package testutil

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	postgres "github.com/Overland-East-Bay/name-sorter/internal/adapters/postgres"
)

var (
	containerOnce sync.Once
	containerDSN  string
	containerErr  error
)

// OpenMigratedPool returns a pool against a migrated database.
//
// DATABASE_URL wins when set; otherwise a shared postgres container is started
// once per test binary. Ryuk reaps the container when the binary exits.
func OpenMigratedPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	dsn := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dsn == "" {
		testcontainers.SkipIfProviderIsNotHealthy(t)
		containerOnce.Do(func() {
			containerDSN, containerErr = startContainer(ctx)
		})
		if containerErr != nil {
			t.Fatalf("failed to start postgres container: %v", containerErr)
		}
		dsn = containerDSN
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolOptions{MaxConns: 4})
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := postgres.Migrate(ctx, pool); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return pool
}

func startContainer(ctx context.Context) (string, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("names"),
		tcpostgres.WithUsername("names"),
		tcpostgres.WithPassword("names"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		return "", err
	}
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return "", err
	}
	return dsn, nil
}
