package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rincon-reservas/cmd/bootstrap"
	"rincon-reservas/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

const fallbackShutdownTimeout = 10 * time.Second

func init() {
	// release unless told otherwise, so a missing GIN_MODE never exposes swagger
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func newHTTPServer(engine *gin.Engine, cfg config.ServerConfig) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}
}

// @title           rincon-reservas
// @version         1.0
// @description     Reservas y pagos Pago Móvil de Hacienda Rincón Grande

// @BasePath  /
// @schemes http https
func startServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := newHTTPServer(engine, cfg.Server)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("reservation API listening",
				"address", ln.Addr().String(),
				"mode", gin.Mode(),
				"env", cfg.App.Env,
				"records", recordSink(cfg),
				"rate_limit", cfg.RateLimit.Enabled && cfg.Redis.Enabled())

			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server stopped unexpectedly", "error", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("draining in-flight reservations")
			return srv.Shutdown(ctx)
		},
	})
}

func recordSink(cfg config.Config) string {
	if cfg.DB.Enabled() {
		return "postgres"
	}
	return "log"
}

func main() {
	os.Exit(run())
}

func run() int {
	var cfg config.Config
	app := fx.New(
		bootstrap.Module,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		fx.Invoke(startServer),
		fx.Populate(&cfg),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		slog.Error("failed to start reservation API", "error", err)
		return 1
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	exitCode := 0
	select {
	case <-sigCtx.Done():
	case sig := <-app.Wait():
		exitCode = sig.ExitCode
	}

	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = fallbackShutdownTimeout
	}
	stopCtx, cancelStop := context.WithTimeout(context.Background(), timeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("failed to stop reservation API cleanly", "error", err)
		exitCode = 1
	}

	slog.Info("reservation API stopped", "exit_code", exitCode)
	return exitCode
}
