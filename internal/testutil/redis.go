// AngelaMos | 2026
// redis.go

package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	redisOnce    sync.Once
	sharedRedis  string
	redisInitErr error
)

// SetupTestRedis starts one Redis container per test binary and returns a
// client on an empty database. Skipped under -short.
func SetupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	if testing.Short() {
		t.Skip("integration test: needs docker")
	}

	redisOnce.Do(func() {
		sharedRedis, redisInitErr = startRedis()
	})
	if redisInitErr != nil {
		t.Fatalf("testutil: failed to setup test redis: %v", redisInitErr)
	}

	client := redis.NewClient(&redis.Options{Addr: sharedRedis})
	t.Cleanup(func() { _ = client.Close() }) //nolint:errcheck // test teardown

	if err := client.FlushDB(t.Context()).Err(); err != nil {
		t.Fatalf("testutil: flush redis: %v", err)
	}
	return client
}

func startRedis() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	return host + ":" + port.Port(), nil
}
