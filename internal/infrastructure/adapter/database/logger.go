package database

import (
	"context"
	"errors"
	"strings"
	"time"

	coreport "github.com/tudorvana/expense-tracker-api/internal/domain/port/core"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger bridges GORM's logger interface onto the core logger so
// database diagnostics land in the same structured stream as everything else
type GormLogger struct {
	coreLogger    coreport.Logger
	logLevel      gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger creates a GORM logger at the given level
func NewGormLogger(coreLogger coreport.Logger, level string) gormlogger.Interface {
	var logLevel gormlogger.LogLevel
	switch strings.ToLower(level) {
	case "silent":
		logLevel = gormlogger.Silent
	case "error":
		logLevel = gormlogger.Error
	case "warn":
		logLevel = gormlogger.Warn
	case "info", "debug":
		logLevel = gormlogger.Info
	default:
		logLevel = gormlogger.Warn
	}

	return &GormLogger{
		coreLogger:    coreLogger,
		logLevel:      logLevel,
		slowThreshold: 200 * time.Millisecond,
	}
}

// LogMode sets the log level for the logger
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs informational messages from GORM
func (l *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.logLevel < gormlogger.Info {
		return
	}
	l.coreLogger.Info(msg, map[string]any{"args": args})
}

// Warn logs warning messages from GORM
func (l *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.logLevel < gormlogger.Warn {
		return
	}
	l.coreLogger.Warn(msg, map[string]any{"args": args})
}

// Error logs errors messages from GORM
func (l *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.logLevel < gormlogger.Error {
		return
	}
	l.coreLogger.Error(msg, map[string]any{"args": args})
}

// Trace logs executed statements with their latency. Slow queries are
// promoted to warnings; not-found results are left to the repositories.
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && l.logLevel >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.coreLogger.Error("Query failed", map[string]any{
			"sql":        sql,
			"rows":       rows,
			"elapsed_ms": elapsed.Milliseconds(),
			"error":      err.Error(),
		})
	case l.slowThreshold != 0 && elapsed > l.slowThreshold && l.logLevel >= gormlogger.Warn:
		l.coreLogger.Warn("Slow query", map[string]any{
			"sql":        sql,
			"rows":       rows,
			"elapsed_ms": elapsed.Milliseconds(),
			"threshold":  l.slowThreshold.String(),
		})
	case l.logLevel >= gormlogger.Info:
		l.coreLogger.Debug("Query executed", map[string]any{
			"sql":        sql,
			"rows":       rows,
			"elapsed_ms": elapsed.Milliseconds(),
		})
	}
}
