package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	appLogger "helpdesk/internal/shared/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// traceLogger is the gorm logger used by every connection. gorm's own
// messages go through the embedded logger; statement traces, including the
// ones issued by Store, are logged with structured fields.
type traceLogger struct {
	gormlogger.Interface
	slow time.Duration
}

func newGormLogger() gormlogger.Interface {
	return &traceLogger{
		Interface: gormlogger.New(
			&slogWriter{},
			gormlogger.Config{
				SlowThreshold:             slowQueryThreshold,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
		slow: slowQueryThreshold,
	}
}

func (l *traceLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &traceLogger{Interface: l.Interface.LogMode(level), slow: l.slow}
}

func (l *traceLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	query, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		appLogger.Error("database error",
			"sql", query,
			"rows", rows,
			"elapsed", elapsed,
			"error", err,
		)
	case l.slow > 0 && elapsed > l.slow:
		appLogger.Warn("slow query",
			"sql", query,
			"rows", rows,
			"elapsed", elapsed,
		)
	default:
		appLogger.Debug("database query",
			"sql", query,
			"rows", rows,
			"elapsed", elapsed,
		)
	}
}

// slogWriter routes gorm's formatted messages to slog by severity.
type slogWriter struct{}

func (w *slogWriter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	lower := strings.ToLower(msg)

	// Version probes issued by the dialectors on open.
	if strings.Contains(lower, "select version()") || strings.Contains(lower, "select @@version") {
		return
	}

	switch {
	case strings.Contains(lower, "[error]"):
		appLogger.Error("database error", "details", msg)
	case strings.Contains(lower, "slow sql"), strings.Contains(lower, "[warn]"):
		appLogger.Warn("database warning", "details", msg)
	default:
		appLogger.Debug("database message", "details", msg)
	}
}
