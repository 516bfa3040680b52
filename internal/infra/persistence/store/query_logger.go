package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"holocron/config"
	deliverycontext "holocron/internal/delivery/context"
	"holocron/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// queryLogger sends GORM output to slog. Statement records carry the request id of the
// HTTP request that issued them, so SQL lines up with the access log.
type queryLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

// newQueryLogger logs every statement in debug mode and only slow or failed ones otherwise.
// database.slowQueryThreshold overrides the 200ms default; a negative value disables slow query warnings.
func newQueryLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	ql := &queryLogger{
		base:          base,
		level:         logger.Warn,
		slowThreshold: defaultSlowQueryThreshold,
	}
	if cfg == nil {
		return ql
	}

	if cfg.Env.Debug {
		ql.level = logger.Info
	}
	if cfg.Database != nil && cfg.Database.SlowQueryThreshold != 0 {
		ql.slowThreshold = cfg.Database.SlowQueryThreshold
	}

	return ql
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.base == nil || l.level < threshold {
		return
	}

	l.base.LogAttrs(ctx, level, "GORM "+level.String(), l.withRequest(ctx, slog.String("message", fmt.Sprintf(msg, args...)))...)
}

// Trace records one statement. Missing rows and constraint violations are expected outcomes
// that repositories turn into 404/409/400, so they are logged at Info and Warn instead of Error.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold

	var (
		level slog.Level
		msg   string
	)
	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		level, msg = slog.LevelInfo, "GORM query"
	case err != nil && (isUniqueConstraintViolation(err) || isForeignKeyConstraintViolation(err) || isCheckConstraintViolation(err)):
		level, msg = slog.LevelWarn, "GORM constraint violation"
	case err != nil:
		level, msg = slog.LevelError, "GORM query failed"
	case slow:
		level, msg = slog.LevelWarn, "GORM slow query"
	default:
		level, msg = slog.LevelInfo, "GORM query"
	}

	if !l.enabled(level) {
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if slow {
		attrs = append(attrs, slog.Duration("slow_threshold", l.slowThreshold))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.base.LogAttrs(ctx, level, msg, l.withRequest(ctx, attrs...)...)
}

func (l *queryLogger) enabled(level slog.Level) bool {
	switch level {
	case slog.LevelError:
		return l.level >= logger.Error
	case slog.LevelWarn:
		return l.level >= logger.Warn
	default:
		return l.level >= logger.Info
	}
}

func (l *queryLogger) withRequest(ctx context.Context, attrs ...slog.Attr) []slog.Attr {
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		attrs = append(attrs, slog.String("request_id", requestID))
	}

	return attrs
}
