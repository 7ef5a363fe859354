// Package pgx_mock provides in-memory pgx.Rows for adapter tests.
package pgx_mock

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Rows serves a fixed table. IterErr is returned from Err once iteration ends.
type Rows struct {
	Columns []string
	Data    [][]any
	IterErr error

	pos    int
	closed bool
}

func (r *Rows) Close() { r.closed = true }

func (r *Rows) Err() error { return r.IterErr }

func (r *Rows) CommandTag() pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("SELECT %d", len(r.Data)))
}

func (r *Rows) FieldDescriptions() []pgconn.FieldDescription {
	fields := make([]pgconn.FieldDescription, len(r.Columns))
	for i, name := range r.Columns {
		fields[i] = pgconn.FieldDescription{Name: name}
	}
	return fields
}

func (r *Rows) Next() bool {
	if r.closed || r.pos >= len(r.Data) {
		r.closed = true
		return false
	}
	r.pos++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	return errors.New("pgx_mock: Scan is not supported, use Values")
}

func (r *Rows) Values() ([]any, error) {
	if r.pos == 0 || r.pos > len(r.Data) {
		return nil, errors.New("pgx_mock: no current row")
	}
	return r.Data[r.pos-1], nil
}

func (r *Rows) RawValues() [][]byte { return nil }

func (r *Rows) Conn() *pgx.Conn { return nil }

// Querier records the last statement and answers with Rows or Err.
type Querier struct {
	Rows *Rows
	Err  error

	SQL  string
	Args []any
}

func (q *Querier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.SQL = sql
	q.Args = args
	if q.Err != nil {
		return nil, q.Err
	}
	if q.Rows == nil {
		return &Rows{}, nil
	}
	return q.Rows, nil
}
