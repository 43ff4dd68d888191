/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package db is the Postgres-backed store for netwatch inventory, samples,
// alerts, topology links and MAC change logs.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

// querier is the subset of *pgxpool.Pool the store issues statements through.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// DB implements Service on a pgx connection pool.
type DB struct {
	pool   *pgxpool.Pool
	conn   querier
	logger logger.Logger
}

var _ Service = (*DB)(nil)

// New dials the database and, when migrate is set, applies the embedded schema.
func New(ctx context.Context, cfg *models.PostgresDatabase, migrate bool, log logger.Logger) (*DB, error) {
	pool, err := NewPool(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if migrate {
		if err := RunMigrations(ctx, pool, log); err != nil {
			pool.Close()

			return nil, err
		}
	}

	return &DB{pool: pool, conn: pool, logger: log}, nil
}

func (db *DB) Close() error {
	if db.pool != nil {
		db.pool.Close()
	}

	return nil
}

func (db *DB) Ping(ctx context.Context) error {
	if db.pool != nil {
		return db.pool.Ping(ctx)
	}

	var one int

	return db.conn.QueryRow(ctx, "SELECT 1").Scan(&one)
}

// queryList runs sql and scans every row with scan.
func queryList[T any](ctx context.Context, q querier, what string, scan func(rowScanner) (*T, error),
	sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrFailedToQuery, what, err)
	}
	defer rows.Close()

	out := make([]T, 0)

	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrFailedToScan, what, err)
		}

		out = append(out, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrFailedToQuery, what, err)
	}

	return out, nil
}

// queryOne scans a single row, mapping pgx.ErrNoRows to ErrNotFound.
func queryOne[T any](ctx context.Context, q querier, what string, scan func(rowScanner) (*T, error),
	sql string, args ...any) (*T, error) {
	item, err := scan(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, wrapRowError(what, err)
	}

	return item, nil
}

func wrapRowError(what string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}

	return fmt.Errorf("%w %s: %w", ErrDatabaseError, what, err)
}

// execOne runs a statement that must touch exactly one row.
func (db *DB) execOne(ctx context.Context, what string, sql string, args ...any) error {
	tag, err := db.conn.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrDatabaseError, what, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}

	return nil
}
