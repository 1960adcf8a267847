//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"rincon-reservas/cmd/bootstrap"
	"rincon-reservas/cmd/bootstrap/components"
	"rincon-reservas/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// Env はテストスイートが触る依存一式
type Env struct {
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Config config.Config
}

// setupE2EEnvironment はスイート毎に専用DBとRedisキー空間を用意し、本番と同じfx構成でアプリを起動する
func setupE2EEnvironment(t *testing.T, override func(*config.Config)) Env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pg := postgresContainer.Endpoint(t)
	rd := redisContainer.Endpoint(t)

	cfg := config.NewTestConfig()
	cfg.DB.DSN = createDatabase(t, pg)
	cfg.DB.MaxConns = 5
	cfg.Redis.Addr = rd.Addr()
	cfg.Redis.KeyPrefix = "e2e-" + uuid.NewString()[:8]
	if override != nil {
		override(&cfg)
	}

	env, app := buildE2EApp(t, cfg)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	slog.Info("E2E環境の準備が完了しました", "postgres", pg.Addr(), "redis", rd.Addr(), "key_prefix", cfg.Redis.KeyPrefix)
	return env
}

// createDatabase は使い捨てDBを作り、そのDSNを返す。
// reservation_records はアプリ起動時に EnsureSchema が作る
func createDatabase(t *testing.T, pg Endpoint) string {
	t.Helper()

	dbName := "reservas_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := postgresDSN(pg, "postgres")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// 起動直後は template1 がロックされていることがあるので数回試す
	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			wait := min(time.Duration(attempt)*500*time.Millisecond, 3*time.Second)
			slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", createErr.Error(), "retry_wait", wait)
			time.Sleep(wait)
		}
		if _, createErr = admin.Exec(ctx, "CREATE DATABASE "+dbName); createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "テスト用データベースの作成に失敗")

	t.Cleanup(func() { dropDatabase(adminDSN, dbName) })

	return postgresDSN(pg, dbName)
}

func dropDatabase(adminDSN, dbName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN)
	if err != nil {
		slog.Warn("クリーンアップ用のデータベース接続に失敗しました", "database", dbName, "error", err.Error())
		return
	}
	defer admin.Close()

	if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
		slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
	}
}

// buildE2EApp は本番と同じモジュール構成で、設定だけ差し替える
func buildE2EApp(t *testing.T, cfg config.Config) (Env, *fx.App) {
	t.Helper()

	var env Env
	app := fx.New(
		fx.Module("testconfig",
			fx.Provide(func() config.Config { return cfg }),
			bootstrap.ConfigSections,
		),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.RedisModule,
		bootstrap.MailModule,
		components.InfraModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&env.Router, &env.DB, &env.Redis, &env.Config),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗しました")

	return env, app
}

// SharedSuite はE2Eスイート共通の土台
type SharedSuite struct {
	suite.Suite
	Env

	// SetupSuite の前に設定するとテスト用設定を上書きできる
	ConfigOverride func(*config.Config)
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	s.Env = setupE2EEnvironment(t, s.ConfigOverride)
	require.NotNil(t, s.Router, "Routerのセットアップに失敗")
	require.NotNil(t, s.DB, "DBのセットアップに失敗")
	require.NotNil(t, s.Redis, "Redisのセットアップに失敗")
}

// SetupSubTest はサブテスト毎に記録と Redis のキーを消す
func (s *SharedSuite) SetupSubTest() {
	t := s.T()
	ctx := context.Background()

	_, err := s.DB.Exec(ctx, "TRUNCATE reservation_records")
	require.NoError(t, err, "記録テーブルのリセットに失敗")

	keys, err := s.Redis.Keys(ctx, fmt.Sprintf("%s:*", s.Config.Redis.KeyPrefix)).Result()
	require.NoError(t, err)
	if len(keys) > 0 {
		require.NoError(t, s.Redis.Del(ctx, keys...).Err())
	}
}
