// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/migrations"
)

// Pool is the connection pool gateway. Every unit of work acquires one
// connection, runs on it in submission order and releases it on every exit
// path. The underlying *sql.DB bounds the number of open and idle
// connections.
type Pool struct {
	db                 *sql.DB
	driver             string
	acquireTimeout     time.Duration
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newPool(db *sql.DB, driver string, acquireTimeout time.Duration, classificator ErrorClassificator, log *logger.Logger) *Pool {
	return &Pool{
		db:                 db,
		driver:             driver,
		acquireTimeout:     acquireTimeout,
		errorClassificator: classificator,
		logger:             log,
	}
}

// Acquire waits at most the acquire timeout for a pooled connection.
// The caller must pass the connection to [Pool.Release] exactly once.
//
// A wait that times out while ctx is still live fails with
// [ErrPoolExhausted]; any other failure is wrapped in [ErrConnection].
func (p *Pool) Acquire(ctx context.Context) (*sql.Conn, error) {
	acquireCtx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	defer cancel()

	conn, err := p.db.Conn(acquireCtx)
	if err == nil {
		return conn, nil
	}

	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		logger.FromContext(ctx).Warn().
			Str("func", "Pool.Acquire").
			Dur("acquire_timeout", p.acquireTimeout).
			Int("in_use", p.db.Stats().InUse).
			Msg("connection pool exhausted")
		return nil, ErrPoolExhausted
	}

	logger.FromContext(ctx).Err(err).Str("func", "Pool.Acquire").Msg("failed to acquire connection")
	return nil, fmt.Errorf("%w: %w", ErrConnection, err)
}

// Release returns conn to the pool. A second release of the same
// connection is logged, not fatal.
func (p *Pool) Release(conn *sql.Conn) {
	if conn == nil {
		return
	}
	if err := conn.Close(); err != nil {
		p.logger.Warn().Err(err).Str("func", "Pool.Release").Msg("failed to release connection")
	}
}

// WithConn implements [Transactor].
func (p *Pool) WithConn(ctx context.Context, fn func(ctx context.Context, q Querier) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer p.Release(conn)

	return fn(ctx, conn)
}

// transactionAttempts bounds how often WithTransaction runs fn when the
// driver reports a retryable failure.
const transactionAttempts = 2

// WithTransaction implements [Transactor].
//
// BEGIN and COMMIT failures are wrapped in [ErrTransaction]. An error from fn
// rolls back and is returned unchanged; a panic rolls back and is re-raised.
// Rollback failures are logged and suppressed. Once BEGIN succeeded the work
// is detached from ctx cancellation and runs to completion.
//
// A failure the driver classifies as [Retryable] (deadlock, serialization
// failure, busy database) rolls back and runs fn once more on a fresh
// connection. fn must therefore only touch the database through q.
func (p *Pool) WithTransaction(ctx context.Context, fn func(ctx context.Context, q Querier) error) error {
	var err error
	for attempt := 1; attempt <= transactionAttempts; attempt++ {
		err = p.runTransaction(ctx, fn)
		if err == nil || p.Classify(err) != Retryable || attempt == transactionAttempts {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "Pool.WithTransaction").
			Int("attempt", attempt).
			Msg("retrying transaction after retryable failure")
	}

	return err
}

func (p *Pool) runTransaction(ctx context.Context, fn func(ctx context.Context, q Querier) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer p.Release(conn)

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}

	txCtx := context.WithoutCancel(ctx)
	log := logger.FromContext(ctx)

	tx, err := conn.BeginTx(txCtx, nil)
	if err != nil {
		log.Err(err).Str("func", "Pool.WithTransaction").Msg("failed to begin transaction")
		return fmt.Errorf("%w: begin: %w", ErrTransaction, err)
	}

	defer func() {
		if r := recover(); r != nil {
			p.rollback(txCtx, tx)
			panic(r)
		}
	}()

	if err = fn(txCtx, tx); err != nil {
		p.rollback(txCtx, tx)
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "Pool.WithTransaction").Msg("failed to commit transaction")
		return fmt.Errorf("%w: commit: %w", ErrTransaction, err)
	}

	return nil
}

func (p *Pool) rollback(ctx context.Context, tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.FromContext(ctx).Err(err).Str("func", "Pool.rollback").Msg("failed to roll back transaction")
	}
}

// Exec runs a statement on a scoped connection.
func (p *Pool) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var res sql.Result
	err := p.WithConn(ctx, func(ctx context.Context, q Querier) error {
		var execErr error
		res, execErr = q.ExecContext(ctx, query, args...)
		return execErr
	})
	return res, err
}

// Query runs a statement on a scoped connection and calls scan once per row.
// Rows are closed before the connection is released.
func (p *Pool) Query(ctx context.Context, scan func(rows *sql.Rows) error, query string, args ...any) error {
	return p.WithConn(ctx, func(ctx context.Context, q Querier) error {
		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			if err = scan(rows); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
		}
		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
}

// QueryRow runs a single-row statement on a scoped connection and passes the
// row to scan. Scan errors, including [sql.ErrNoRows], are returned as is.
func (p *Pool) QueryRow(ctx context.Context, scan func(row *sql.Row) error, query string, args ...any) error {
	return p.WithConn(ctx, func(ctx context.Context, q Querier) error {
		return scan(q.QueryRowContext(ctx, query, args...))
	})
}

// IsUniqueViolation reports whether err is a unique constraint failure of the
// configured driver.
func (p *Pool) IsUniqueViolation(err error) bool {
	return p.errorClassificator.IsUniqueViolation(err)
}

// IsForeignKeyViolation reports whether err is a foreign key failure of the
// configured driver.
func (p *Pool) IsForeignKeyViolation(err error) bool {
	return p.errorClassificator.IsForeignKeyViolation(err)
}

// Classify reports whether err is retryable for the configured driver.
func (p *Pool) Classify(err error) ErrorClassification {
	return p.errorClassificator.Classify(err)
}

// Ping checks that the database is reachable.
func (p *Pool) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Stats returns pool statistics.
func (p *Pool) Stats() sql.DBStats {
	return p.db.Stats()
}

// DB exposes the underlying handle for collectors and migrations.
func (p *Pool) DB() *sql.DB {
	return p.db
}

// Driver returns the database/sql driver name.
func (p *Pool) Driver() string {
	return p.driver
}

// Migrate applies pending schema migrations for the configured driver.
func (p *Pool) Migrate() error {
	return migrations.Migrate(p.db, p.driver)
}

// Close closes every pooled connection.
func (p *Pool) Close() error {
	return p.db.Close()
}
