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

package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeQuerier serves canned rows and records the statements it was given.
type fakeQuerier struct {
	rows     [][]any
	row      []any
	rowErr   error
	queryErr error
	affected int64

	queries []string
	args    [][]any
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.queries = append(f.queries, sql)
	f.args = append(f.args, args)

	if f.queryErr != nil {
		return nil, f.queryErr
	}

	return &fakeRows{data: f.rows, idx: -1}, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.queries = append(f.queries, sql)
	f.args = append(f.args, args)

	return fakeRow{values: f.row, err: f.rowErr}
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.queries = append(f.queries, sql)
	f.args = append(f.args, args)

	if f.queryErr != nil {
		return pgconn.CommandTag{}, f.queryErr
	}

	return pgconn.NewCommandTag(fmt.Sprintf("UPDATE %d", f.affected)), nil
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}

	if r.values == nil {
		return pgx.ErrNoRows
	}

	return assign(dest, r.values)
}

type fakeRows struct {
	data [][]any
	idx  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.data[r.idx], nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.idx++

	return r.idx < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(dest, r.data[r.idx])
}

var errColumnCount = errors.New("column count mismatch")

// assign copies values into scan destinations the way pgx would for the
// column types the store uses: nil leaves pointer destinations nil.
func assign(dest []any, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("%w: %d destinations, %d values", errColumnCount, len(dest), len(values))
	}

	for i, v := range values {
		target := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}

		val := reflect.ValueOf(v)
		if target.Kind() == reflect.Ptr && val.Kind() != reflect.Ptr {
			ptr := reflect.New(target.Type().Elem())
			ptr.Elem().Set(val)
			target.Set(ptr)

			continue
		}

		target.Set(val)
	}

	return nil
}
