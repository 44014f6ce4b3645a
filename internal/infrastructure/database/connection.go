package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/shared/config"
	appLogger "helpdesk/internal/shared/logger"
)

const defaultConnectTimeout = 5 * time.Second

// Open connects to the configured backend. When that backend cannot be
// opened or pinged, the failure is logged once and the embedded SQLite
// database at cfg.Path is used instead. Only a SQLite failure is fatal.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (Store, error) {
	backend, known := ParseBackend(cfg.Type)
	if !known {
		appLogger.Warn("unknown database type, using sqlite", "type", cfg.Type)
	}

	if backend != BackendSQLite {
		store, err := open(ctx, dialectFor(backend), cfg)
		if err == nil {
			return store, nil
		}
		appLogger.Warn("database unavailable, falling back to sqlite",
			"backend", backend,
			"error", err,
			"sqlite_path", cfg.Path,
		)
	}

	store, err := open(ctx, sqliteDialect{}, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return store, nil
}

func open(ctx context.Context, d dialect, cfg *config.DatabaseConfig) (*sqlStore, error) {
	if d.Backend() == BackendSQLite {
		if err := ensureSQLiteDir(cfg.Path); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	gormLogger := newGormLogger()
	gdb, err := gorm.Open(d.Dialector(cfg), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		closeGorm(gdb)
		return nil, fmt.Errorf("failed to connect to %s: %w", d.Backend(), err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if d.Backend() == BackendSQLite {
		// One connection: SQLite serializes writers, and an in-memory
		// database lives only as long as its connection.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	}

	timeout := defaultConnectTimeout
	if cfg.ConnectTimeout > 0 {
		timeout = time.Duration(cfg.ConnectTimeout) * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", d.Backend(), err)
	}

	appLogger.Info("database connection established", "backend", d.Backend())
	return newSQLStore(sqlDB, d, gormLogger), nil
}

func closeGorm(gdb *gorm.DB) {
	if gdb == nil {
		return
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
