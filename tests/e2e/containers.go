//go:build e2e

package e2e

import (
	"context"
	"fmt"
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
	testUser     = "test"
	testPassword = "testpass"

	postgresPort nat.Port = "5432/tcp"
	redisPort    nat.Port = "6379/tcp"
)

// Endpoint はホスト側から見たコンテナの接続先
type Endpoint struct {
	Host string
	Port nat.Port
}

func (e Endpoint) Addr() string {
	return fmt.Sprintf("%s:%s", e.Host, e.Port.Port())
}

// sharedContainer はプロセス内で一度だけ起動し、全スイートで使い回す。
// 後片付けは Ryuk に任せる（スイート単位で止めると後続スイートが使えない）
type sharedContainer struct {
	name         string
	port         nat.Port
	startTimeout time.Duration
	request      func() testcontainers.ContainerRequest

	once      sync.Once
	container testcontainers.Container
	endpoint  Endpoint
	err       error
}

func (s *sharedContainer) Endpoint(t *testing.T) Endpoint {
	t.Helper()

	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.startTimeout)
		defer cancel()

		s.container, s.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: s.request(),
			Started:          true,
		})
		if s.err != nil {
			return
		}
		s.endpoint, s.err = resolveEndpoint(ctx, s.container, s.port)
	})

	require.NoError(t, s.err, "%sコンテナの起動に失敗", s.name)
	return s.endpoint
}

func resolveEndpoint(ctx context.Context, c testcontainers.Container, port nat.Port) (Endpoint, error) {
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return Endpoint{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return Endpoint{}, err
	}
	return Endpoint{Host: host, Port: mapped}, nil
}

var postgresContainer = &sharedContainer{
	name:         "PostgreSQL",
	port:         postgresPort,
	startTimeout: 3 * time.Minute,
	request: func() testcontainers.ContainerRequest {
		return testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{string(postgresPort)},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			// 記録テーブルは使い捨てなので耐久性は不要
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
			},
			WaitingFor: wait.ForSQL(postgresPort, "pgx", func(host string, port nat.Port) string {
				return postgresDSN(Endpoint{Host: host, Port: port}, "postgres")
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}
	},
}

var redisContainer = &sharedContainer{
	name:         "Redis",
	port:         redisPort,
	startTimeout: 2 * time.Minute,
	request: func() testcontainers.ContainerRequest {
		return testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{string(redisPort)},
			// レート・トークンバケットは揮発でよい
			Cmd: []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort(redisPort),
				wait.ForLog("Ready to accept connections"),
			).WithDeadline(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}
	},
}

func postgresDSN(e Endpoint, dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", testUser, testPassword, e.Addr(), dbName)
}
