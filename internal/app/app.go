// Package app wires the configured adapters together and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/vadimbarashkov/shorturl/internal/adapter/validator"
	"github.com/vadimbarashkov/shorturl/internal/config"
	"github.com/vadimbarashkov/shorturl/internal/entity"
	"github.com/vadimbarashkov/shorturl/internal/metrics"
	"github.com/vadimbarashkov/shorturl/internal/usecase"
	"github.com/vadimbarashkov/shorturl/pkg/postgres"
	"github.com/vadimbarashkov/shorturl/pkg/sqlite"
	"golang.org/x/sync/errgroup"

	myhttp "github.com/vadimbarashkov/shorturl/internal/adapter/delivery/http"
	pgrepo "github.com/vadimbarashkov/shorturl/internal/adapter/repository/postgres"
	redisrepo "github.com/vadimbarashkov/shorturl/internal/adapter/repository/redis"
	sqliterepo "github.com/vadimbarashkov/shorturl/internal/adapter/repository/sqlite"
)

const shutdownTimeout = 15 * time.Second

type urlRepository interface {
	Save(ctx context.Context, originalURL string, shortCode int64) (*entity.URL, error)
	RetrieveByOriginalURL(ctx context.Context, originalURL string) (*entity.URL, error)
	RetrieveByShortCode(ctx context.Context, shortCode int64) (*entity.URL, error)
}

type sequenceRepository interface {
	EnsureSequence(ctx context.Context) error
	Next(ctx context.Context) (int64, error)
}

// NewLogger builds the service logger: JSON in prod, concise text in dev.
func NewLogger(cfg *config.Config) *httplog.Logger {
	return httplog.NewLogger("url-shortener", httplog.Options{
		JSON:             cfg.Env == config.EnvProd,
		LogLevel:         cfg.Log.SlogLevel(),
		Concise:          cfg.Env == config.EnvDev,
		RequestHeaders:   cfg.Env != config.EnvProd,
		Tags: map[string]string{
			"env": cfg.Env,
		},
	})
}

// MigrateUp applies the schema migrations of the configured store.
func MigrateUp(cfg *config.Config) error {
	const op = "app.MigrateUp"

	var err error
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		err = sqlite.RunMigrations(cfg.StorageDSN())
	default:
		err = postgres.RunMigrations(cfg.StorageDSN())
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MigrateDown rolls back every schema migration of the configured store.
func MigrateDown(cfg *config.Config) error {
	const op = "app.MigrateDown"

	var err error
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		err = sqlite.RollbackMigrations(cfg.StorageDSN())
	default:
		err = postgres.RollbackMigrations(cfg.StorageDSN())
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func openDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		return sqlite.New(ctx, sqlite.DSN(cfg.StorageDSN(), cfg.SQLite.BusyTimeout))
	default:
		return postgres.New(
			ctx,
			cfg.StorageDSN(),
			postgres.WithConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime),
			postgres.WithConnMaxLifetime(cfg.Postgres.ConnMaxLifetime),
			postgres.WithMaxIdleConns(cfg.Postgres.MaxIdleConns),
			postgres.WithMaxOpenConns(cfg.Postgres.MaxOpenConns),
		)
	}
}

func newRepositories(cfg *config.Config, db *sqlx.DB) (urlRepository, sequenceRepository) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		return sqliterepo.NewURLRepository(db), sqliterepo.NewSequenceRepository(db, cfg.Sequence.Name)
	default:
		return pgrepo.NewURLRepository(db), pgrepo.NewSequenceRepository(db, cfg.Sequence.Name)
	}
}

func newRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Run connects the store, migrates it, ensures the sequence exists and
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *httplog.Logger) error {
	const op = "app.Run"

	db, err := openDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}
	defer db.Close()

	if err := MigrateUp(cfg); err != nil {
		return fmt.Errorf("%s: failed to run migrations: %w", op, err)
	}

	urlRepo, seqRepo := newRepositories(cfg, db)

	if cfg.UsesRedis() {
		client, err := newRedisClient(ctx, cfg)
		if err != nil {
			return fmt.Errorf("%s: failed to connect to redis: %w", op, err)
		}
		defer client.Close()

		if cfg.Redis.Enabled {
			urlRepo = redisrepo.NewCachedURLRepository(urlRepo, client, cfg.Redis.CacheTTL, logger.Logger)
		}
		if cfg.Sequence.Backend == config.SequenceBackendRedis {
			seqRepo = redisrepo.NewSequenceRepository(client, cfg.Sequence.Name)
		}
	}

	if err := seqRepo.EnsureSequence(ctx); err != nil {
		return fmt.Errorf("%s: failed to ensure sequence: %w", op, err)
	}

	reg := newRegistry()

	uc := usecase.NewURLUseCase(
		urlRepo,
		seqRepo,
		validator.New(validator.WithLookupTimeout(cfg.Validator.LookupTimeout)),
		metrics.New(reg),
		logger.Logger,
	)

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        myhttp.NewRouter(logger, reg, cfg.HTTPServer.RequestTimeout, uc),
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server",
			slog.String("addr", server.Addr),
			slog.String("storage", cfg.Storage.Driver),
			slog.String("sequence", cfg.Sequence.Backend),
			slog.Bool("cache", cfg.Redis.Enabled),
		)

		var err error

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}
