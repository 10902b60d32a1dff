// Package server initializes and runs the credkeeper server. It selects the
// storage backend, builds the authentication core, serves gRPC and
// Prometheus metrics, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/logging"
	"github.com/dmitrijs2005/credkeeper/internal/server/auth"
	"github.com/dmitrijs2005/credkeeper/internal/server/config"
	"github.com/dmitrijs2005/credkeeper/internal/server/lock"
	"github.com/dmitrijs2005/credkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/credkeeper/internal/server/secrets"
	"github.com/dmitrijs2005/credkeeper/internal/server/services"
	"github.com/redis/go-redis/v9"

	gs "github.com/dmitrijs2005/credkeeper/internal/server/grpc"
)

const (
	rotationLockKey = "credkeeper:biometric-rotation"
	shutdownTimeout = 5 * time.Second
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	redis   *redis.Client
	metrics *metrics.Metrics
	grpc    *gs.GRPCServer
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

// NewApp wires the storage backend, the authentication core and the
// transport. Postgres migrations are applied before it returns.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.New(os.Stdout, c.LogLevel, c.LogFormat)

	app := &App{config: c, logger: logger, metrics: metrics.New()}

	var manager repomanager.RepositoryManager
	switch c.StorageType {
	case config.StorageMemory:
		manager = repomanager.NewInMemoryRepositoryManager()
	case config.StoragePostgres:
		db, err := openDB(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}
		app.db = db
		manager = repomanager.NewPostgresRepositoryManager()
		if err := manager.RunMigrations(ctx, db); err != nil {
			app.close(ctx)
			return nil, fmt.Errorf("migration error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown storage type %q", c.StorageType)
	}

	core, tokens, err := app.buildCore(manager)
	if err != nil {
		app.close(ctx)
		return nil, err
	}

	app.grpc = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, core, tokens, app.metrics)

	return app, nil
}

func (app *App) buildCore(manager repomanager.RepositoryManager) (*services.AuthService, *auth.TokenIssuer, error) {
	c := app.config

	hasher, err := secrets.NewHasher(c.HasherParams())
	if err != nil {
		return nil, nil, fmt.Errorf("hasher init error: %w", err)
	}

	// a nil *secrets.Digester must not reach the interface
	var digester services.Digester
	if c.BiometricIndexKey != "" {
		d, err := secrets.NewDigester([]byte(c.BiometricIndexKey))
		if err != nil {
			return nil, nil, fmt.Errorf("digester init error: %w", err)
		}
		digester = d
	}

	var locker lock.Locker = lock.NewLocal()
	if c.RedisAddr != "" {
		app.redis = redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		locker = lock.NewRedis(app.redis, rotationLockKey, c.RotationLockTTL)
	}

	tokens, err := auth.NewTokenIssuer([]byte(c.SecretKey), c.TokenValidityDuration, c.TokenIssuer)
	if err != nil {
		return nil, nil, fmt.Errorf("token issuer init error: %w", err)
	}

	validator, err := services.NewCredentialValidator(app.db, manager, hasher)
	if err != nil {
		return nil, nil, fmt.Errorf("validator init error: %w", err)
	}
	matcher := services.NewBiometricMatcher(app.db, manager, hasher, digester, locker, app.logger)
	registrar := services.NewRegistrar(app.db, manager, hasher)

	return services.NewAuthService(validator, matcher, registrar, services.NewDirectory(app.db, manager), tokens), tokens, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) func() {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigs:
			cancelFunc()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	if err := app.grpc.Run(ctx); err != nil {
		app.logger.Error(ctx, "grpc server failed", "error", err)
		cancelFunc()
		return err
	}
	return nil
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", app.metrics.Handler())

	srv := &http.Server{
		Addr:              app.config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting metrics server", "address", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, "metrics server failed", "error", err)
		cancelFunc()
		return err
	}
	return nil
}

// Run serves until ctx is done, a termination signal arrives or one of the
// servers fails. Resources are released before it returns.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	stopSignals := app.initSignalHandler(cancelFunc)
	defer stopSignals()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	record := func(err error) {
		if err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		record(app.startGRPCServer(ctx, cancelFunc))
	}()

	if app.config.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record(app.startMetricsServer(ctx, cancelFunc))
		}()
	}

	wg.Wait()

	app.close(ctx)
	app.logger.Info(ctx, "App stopped")

	return errors.Join(errs...)
}

func (app *App) close(ctx context.Context) {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Warn(ctx, "redis close error", "error", err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn(ctx, "db close error", "error", err)
		}
	}
}
