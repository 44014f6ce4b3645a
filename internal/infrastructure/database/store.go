// Package database puts the supported SQL engines behind one
// parameterized-query interface with uniform result shapes.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	gormlogger "gorm.io/gorm/logger"
)

// Store executes '?'-parameterized SQL against the configured backend.
type Store interface {
	// Run executes a write. LastInsertID is set only for INSERT statements.
	Run(ctx context.Context, query string, args ...any) (Result, error)
	// Get returns the first matching row, or nil when nothing matches.
	Get(ctx context.Context, query string, args ...any) (Row, error)
	// All returns every matching row; the slice is empty, not nil, when
	// nothing matches.
	All(ctx context.Context, query string, args ...any) ([]Row, error)
	Backend() Backend
	Ping(ctx context.Context) error
	Close() error
}

type Result struct {
	LastInsertID *int64
	RowsAffected int64
}

type sqlStore struct {
	db      *sql.DB
	dialect dialect
	logger  gormlogger.Interface
}

func newSQLStore(db *sql.DB, d dialect, l gormlogger.Interface) *sqlStore {
	return &sqlStore{db: db, dialect: d, logger: l}
}

func (s *sqlStore) Backend() Backend {
	return s.dialect.Backend()
}

func (s *sqlStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

func (s *sqlStore) Run(ctx context.Context, query string, args ...any) (res Result, err error) {
	q, err := s.dialect.Rebind(query, len(args))
	if err != nil {
		return Result{}, err
	}

	begin := time.Now()
	defer func() {
		s.trace(ctx, begin, q, res.RowsAffected, err)
	}()

	if isInsert(q) {
		return s.insert(ctx, q, args)
	}

	r, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return Result{}, err
	}
	affected, err := r.RowsAffected()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return Result{RowsAffected: affected}, nil
}

func (s *sqlStore) insert(ctx context.Context, q string, args []any) (Result, error) {
	q, returnsID := s.dialect.InsertQuery(q)

	if returnsID {
		var raw any
		if err := s.db.QueryRowContext(ctx, q, args...).Scan(&raw); err != nil {
			return Result{}, err
		}
		id := asInt64(raw)
		return Result{LastInsertID: &id, RowsAffected: 1}, nil
	}

	r, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return Result{}, err
	}
	res := Result{}
	if affected, err := r.RowsAffected(); err == nil {
		res.RowsAffected = affected
	}
	if id, err := r.LastInsertId(); err == nil {
		res.LastInsertID = &id
	}
	return res, nil
}

func (s *sqlStore) Get(ctx context.Context, query string, args ...any) (Row, error) {
	rows, err := s.query(ctx, query, args, 1)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (s *sqlStore) All(ctx context.Context, query string, args ...any) ([]Row, error) {
	return s.query(ctx, query, args, 0)
}

func (s *sqlStore) query(ctx context.Context, query string, args []any, limit int) (out []Row, err error) {
	q, err := s.dialect.Rebind(query, len(args))
	if err != nil {
		return nil, err
	}

	begin := time.Now()
	defer func() {
		s.trace(ctx, begin, q, int64(len(out)), err)
	}()

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRows(rows, limit)
}

func (s *sqlStore) trace(ctx context.Context, begin time.Time, q string, rows int64, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Trace(ctx, begin, func() (string, int64) {
		return q, rows
	}, err)
}
