// AngelaMos | 2026
// db.go

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/angelamos/memorial/internal/core"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// tables in delete order; children first.
var tables = []string{
	"contributions",
	"testimonials",
	"sources",
	"martyrs",
	"refresh_tokens",
	"profiles",
	"users",
}

// SetupTestDB starts one PostgreSQL container per test binary, applies the
// embedded migrations and returns an empty database. Skipped under -short.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("integration test: needs docker")
	}

	once.Do(func() {
		sharedDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testutil: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "pgx", sharedDSN)
	if err != nil {
		t.Fatalf("testutil: connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() }) //nolint:errcheck // test teardown

	Truncate(t, db)
	return db
}

func Truncate(t *testing.T, db *sqlx.DB) {
	t.Helper()

	for _, table := range tables {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("testutil: clear %s: %v", table, err)
		}
	}
}

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "memorial",
			"POSTGRES_PASSWORD": "memorial",
			"POSTGRES_DB":       "memorial_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	dsn := fmt.Sprintf(
		"postgres://memorial:memorial@%s:%s/memorial_test?sslmode=disable",
		host, port.Port(),
	)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return "", fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return "", fmt.Errorf("db ping: %w", err)
	}

	if err := core.Migrate(ctx, db, nil); err != nil {
		return "", err
	}

	return dsn, nil
}
