package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeRow satisfies pgx.Row from canned data
type fakeRow struct {
	err  error
	fill func(dest []any)
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if r.fill != nil {
		r.fill(dest)
	}
	return nil
}

type recordedCall struct {
	sql  string
	args []any
}

// fakeQuerier satisfies execQuerier, replaying queued rows and recording
// every statement it sees
type fakeQuerier struct {
	rows    []fakeRow
	queries []recordedCall
	execs   []recordedCall
	execTag pgconn.CommandTag
	execErr error
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.queries = append(q.queries, recordedCall{sql: sql, args: args})
	if len(q.rows) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	row := q.rows[0]
	q.rows = q.rows[1:]
	return row
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.execs = append(q.execs, recordedCall{sql: sql, args: args})
	return q.execTag, q.execErr
}
