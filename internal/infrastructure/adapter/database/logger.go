package database

import (
	"context"
	"time"

	gormlogger "gorm.io/gorm/logger"

	coreport "luckyten/internal/domain/port/core"
)

// GormLogger bridges GORM's logger interface onto the domain Logger port
type GormLogger struct {
	logger        coreport.Logger
	slowThreshold time.Duration
}

// NewGormLogger creates a GORM logger that forwards to the domain logger
func NewGormLogger(logger coreport.Logger) gormlogger.Interface {
	return &GormLogger{
		logger:        logger,
		slowThreshold: 200 * time.Millisecond,
	}
}

// LogMode implements gorm's logger interface; the level is managed by the
// domain logger, so this is a no-op
func (l *GormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *GormLogger) Info(_ context.Context, msg string, data ...any) {
	l.logger.Info(msg, map[string]any{"data": data})
}

func (l *GormLogger) Warn(_ context.Context, msg string, data ...any) {
	l.logger.Warn(msg, map[string]any{"data": data})
}

func (l *GormLogger) Error(_ context.Context, msg string, data ...any) {
	l.logger.Error(msg, map[string]any{"data": data})
}

// Trace logs completed statements, flagging slow queries and errors
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	fields := map[string]any{
		"sql":        sql,
		"rows":       rows,
		"elapsed_ms": elapsed.Milliseconds(),
	}

	switch {
	case err != nil:
		fields["error"] = err.Error()
		l.logger.Debug("Query failed", fields)
	case elapsed > l.slowThreshold:
		l.logger.Warn("Slow query", fields)
	default:
		l.logger.Debug("Query executed", fields)
	}
}
