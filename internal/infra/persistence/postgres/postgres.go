// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"tasktag/config"
	"tasktag/internal/domain/lifecycle"
	"tasktag/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolStatsInterval = 10 * time.Second
	poolWaitWarnFloor = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates PostgreSQL client mapping
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	statsCtx, stopStats := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go reportPoolStats(statsCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopStats()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// reportPoolStats periodically logs connection pool pressure. A tick that
// saw goroutines blocked waiting for a connection is logged, warning when
// the accumulated wait crossed poolWaitWarnFloor.
func reportPoolStats(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	last := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := sqlDB.Stats()
			waited := stats.WaitCount - last.WaitCount
			waitedFor := stats.WaitDuration - last.WaitDuration
			last = stats

			if waited == 0 {
				continue
			}

			level := slog.LevelDebug
			if waitedFor >= poolWaitWarnFloor {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Postgres pool contention",
				slog.Int64("waits", waited),
				slog.Duration("waitDuration", waitedFor),
				slog.Int("open", stats.OpenConnections),
				slog.Int("inUse", stats.InUse),
				slog.Int("idle", stats.Idle),
				slog.Int("maxOpen", stats.MaxOpenConnections),
			)
		}
	}
}
