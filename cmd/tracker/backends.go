package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alem-hub/progress-tracker/config"
	"github.com/alem-hub/progress-tracker/internal/domain/notification"
	"github.com/alem-hub/progress-tracker/internal/domain/student"
	"github.com/alem-hub/progress-tracker/internal/infrastructure/metrics"
	"github.com/alem-hub/progress-tracker/internal/infrastructure/persistence/memory"
	"github.com/alem-hub/progress-tracker/internal/infrastructure/persistence/postgres"
	"github.com/alem-hub/progress-tracker/internal/infrastructure/persistence/redis"
	"github.com/alem-hub/progress-tracker/pkg/retry"
)

func noop() {}

// openStudentRepository returns the configured student store and its closer.
// Networked stores register a ping check on health.
func openStudentRepository(ctx context.Context, cfg *config.Config, health *metrics.HealthChecker, log *slog.Logger) (student.Repository, func(), error) {
	if !cfg.UsesPostgres() {
		return memory.NewStudentRepository(), noop, nil
	}

	conn, err := connectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	if _, err := runMigrations(ctx, conn, log); err != nil {
		conn.Close()
		return nil, nil, err
	}
	health.AddCheck("postgres", metrics.PingCheck(conn))

	closeFn := func() {
		log.Debug("closing database connection")
		conn.Close()
	}
	return postgres.NewStudentRepository(conn), closeFn, nil
}

// openNotificationLedger returns the configured sent-notification ledger and its closer.
func openNotificationLedger(ctx context.Context, cfg *config.Config, health *metrics.HealthChecker, log *slog.Logger) (notification.Ledger, func(), error) {
	if !cfg.UsesRedis() {
		return memory.NewNotificationLedger(), noop, nil
	}

	redisCfg := redis.DefaultConfig()
	redisCfg.Addr = cfg.Redis.Addr
	redisCfg.Password = cfg.Redis.Password
	redisCfg.DB = cfg.Redis.DB
	redisCfg.KeyPrefix = cfg.Redis.KeyPrefix
	redisCfg.PoolSize = cfg.Redis.PoolSize
	redisCfg.DialTimeout = cfg.Redis.DialTimeout
	redisCfg.ReadTimeout = cfg.Redis.ReadTimeout
	redisCfg.WriteTimeout = cfg.Redis.WriteTimeout

	client, err := retry.DoWithData(ctx, func(ctx context.Context) (*redis.Client, error) {
		return redis.NewClient(ctx, redisCfg)
	}, connectOptions(cfg, log, "redis")...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Debug("redis connection established", "addr", redisCfg.Addr)
	health.AddCheck("redis", metrics.PingCheck(client))

	closeFn := func() {
		log.Debug("closing redis connection")
		_ = client.Close()
	}
	return redis.NewNotificationLedger(client), closeFn, nil
}

func connectPostgres(ctx context.Context, cfg *config.Config, log *slog.Logger) (*postgres.Connection, error) {
	pgCfg := postgres.DefaultConfig()
	pgCfg.URL = cfg.Database.URL
	pgCfg.MaxConns = int32(cfg.Database.MaxConns)
	pgCfg.MinConns = int32(cfg.Database.MinConns)
	pgCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime
	pgCfg.MaxConnIdleTime = cfg.Database.ConnMaxIdleTime
	pgCfg.QueryTimeout = cfg.Database.QueryTimeout

	conn, err := retry.DoWithData(ctx, func(ctx context.Context) (*postgres.Connection, error) {
		return postgres.NewConnection(ctx, pgCfg)
	}, connectOptions(cfg, log, "postgres")...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Debug("database connection established")
	return conn, nil
}

func runMigrations(ctx context.Context, conn *postgres.Connection, log *slog.Logger) ([]postgres.Migration, error) {
	migrator := postgres.NewMigrator(conn)
	if err := migrator.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	status, err := migrator.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get migration status: %w", err)
	}

	applied := 0
	for _, m := range status {
		if m.IsApplied {
			applied++
		}
	}
	log.Debug("migrations completed", "applied", applied, "total", len(status))
	return status, nil
}

func connectOptions(cfg *config.Config, log *slog.Logger, backend string) []retry.Option {
	return []retry.Option{
		retry.WithMaxAttempts(cfg.Storage.ConnectAttempts),
		retry.WithInitialDelay(cfg.Storage.ConnectDelay),
		retry.WithMaxDelay(10 * cfg.Storage.ConnectDelay),
		retry.WithOnRetry(func(attempt int, err error, delay time.Duration) {
			log.Warn("backend connection failed, retrying",
				"backend", backend,
				"attempt", attempt,
				"delay", delay,
				"error", err,
			)
		}),
	}
}
