// Package store contains the GORM implementation of the persistence layer.
// It serves PostgreSQL in production and SQLite for local runs and tests.
package store

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"holocron/config"
	"holocron/internal/domain/lifecycle"
	"holocron/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond

	sqliteDriverName       = "sqlite"
	sqliteForeignKeyPragma = "_pragma=foreign_keys(1)"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured store and ties its pool to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the store selected by cfg.Database.URL.
// postgres:// URLs use pgx, other URLs are SQLite DSNs, and an empty URL falls back to the postgres block.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	gormLogger := newQueryLogger(logger, cfg)

	var dbCfg config.DatabaseConfig
	if cfg.Database != nil {
		dbCfg = *cfg.Database
	}

	var (
		db  *gorm.DB
		err error
	)
	switch {
	case dbCfg.URL == "":
		if cfg.Postgres == nil {
			return nil, errors.New("either database.url or postgres must be configured")
		}
		db, err = pgLib.New(cfg.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}
		db.TranslateError = true
	case isPostgresURL(dbCfg.URL):
		db, err = gorm.Open(postgres.Open(dbCfg.URL), &gorm.Config{TranslateError: true, Logger: gormLogger})
		if err != nil {
			return nil, errors.Wrap(err, "failed to open PostgreSQL")
		}
		if err := useReplicas(db, dbCfg.Replicas); err != nil {
			return nil, err
		}
	default:
		db, err = gorm.Open(sqlite.New(sqlite.Config{
			DriverName: sqliteDriverName,
			DSN:        SQLiteDSN(dbCfg.URL),
		}), &gorm.Config{TranslateError: true, Logger: gormLogger})
		if err != nil {
			return nil, errors.Wrap(err, "failed to open SQLite")
		}
	}

	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// Multi-step writes go through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 gormLogger,
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}
	if dbCfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(dbCfg.MaxOpenConns)
	}
	if dbCfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(dbCfg.MaxIdleConns)
	}
	if dbCfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)
	}

	return db, nil
}

func useReplicas(db *gorm.DB, replicaURLs []string) error {
	if len(replicaURLs) == 0 {
		return nil
	}

	replicas := make([]gorm.Dialector, 0, len(replicaURLs))
	for _, url := range replicaURLs {
		replicas = append(replicas, postgres.Open(url))
	}

	if err := db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	})); err != nil {
		return errors.Wrap(err, "failed to register read replicas")
	}

	return nil
}

func isPostgresURL(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

// SQLiteDSN strips an optional sqlite:// scheme and makes sure foreign keys are enforced.
func SQLiteDSN(url string) string {
	dsn := strings.TrimPrefix(url, "sqlite://")
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}

	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqliteForeignKeyPragma
	}

	return dsn + "?" + sqliteForeignKeyPragma
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			if waitDelta > 0 {
				waitDurationDelta := cur.WaitDuration - prev.WaitDuration
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				level := slog.LevelDebug
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					level = slog.LevelWarn
				}
				logger.LogAttrs(ctx, level, "Database pool wait observed", attrs...)
			}

			prev = cur
		}
	}
}
