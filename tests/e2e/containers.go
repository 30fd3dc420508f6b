//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage = "postgres:17"
	redisImage    = "redis:7-alpine"

	testUser     = "test"
	testPassword = "testpass"
)

var (
	containersOnce sync.Once
	containers     struct {
		postgres ContainerInfo
		redis    ContainerInfo
		err      error
	}
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) Addr() string {
	return c.Host + ":" + c.Port.Port()
}

// startContainers boots postgres and redis once per test process; every suite
// then works in its own database on the shared server.
func startContainers(t *testing.T) (postgresInfo, redisInfo ContainerInfo) {
	t.Helper()

	containersOnce.Do(func() {
		pg, err := startContainer(postgresRequest(), "5432/tcp", 180*time.Second)
		if err != nil {
			containers.err = fmt.Errorf("postgres: %w", err)
			return
		}
		rd, err := startContainer(redisRequest(), "6379/tcp", 60*time.Second)
		if err != nil {
			containers.err = fmt.Errorf("redis: %w", err)
			return
		}
		containers.postgres, containers.redis = pg, rd
	})
	require.NoError(t, containers.err, "failed to start e2e containers")

	return containers.postgres, containers.redis
}

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       "postgres",
		},
		// durability is irrelevant for throwaway data
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "shared_buffers=256MB",
			"-c", "max_connections=200",
			"-c", "log_statement=none",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
				testUser, testPassword, host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
		Labels: map[string]string{"purpose": "e2e-tests"},
	}
}

func redisRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        redisImage,
		ExposedPorts: []string{"6379/tcp"},
		Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		Labels:       map[string]string{"purpose": "e2e-tests"},
	}
}

// startContainer relies on ryuk to remove the container when the test process exits.
func startContainer(req testcontainers.ContainerRequest, port string, timeout time.Duration) (ContainerInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return ContainerInfo{}, err
	}

	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}

	slog.Info("e2e container ready", "image", req.Image, "host", host, "port", mappedPort.Port())
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}
