package infra

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// SQLExecutor is the query surface shared by pgxpool.Pool and SQLRunner.
type SQLExecutor interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

const namePrefix = "-- name:"

// SQLRunner logs every statement by the name given in its leading
// "-- name: X" comment.
type SQLRunner struct {
	db     SQLExecutor
	logger zerolog.Logger
	clock  func() time.Time
}

func NewSQLRunner(pool *pgxpool.Pool, logger zerolog.Logger) *SQLRunner {
	return &SQLRunner{db: pool, logger: logger, clock: time.Now}
}

func (r *SQLRunner) now() time.Time {
	if r.clock == nil {
		return time.Now()
	}
	return r.clock()
}

func (r *SQLRunner) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	name := QueryName(query)
	start := r.now()
	tag, err := r.db.Exec(ctx, query, args...)
	r.log(name, "exec", start, err)
	return tag, err
}

func (r *SQLRunner) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	name := QueryName(query)
	start := r.now()
	return loggingRow{row: r.db.QueryRow(ctx, query, args...), runner: r, name: name, start: start}
}

func (r *SQLRunner) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	name := QueryName(query)
	start := r.now()
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log(name, "query", start, err)
		return nil, err
	}
	return loggingRows{Rows: rows, runner: r, name: name, start: start}, nil
}

func (r *SQLRunner) log(name, op string, start time.Time, err error) {
	ev := r.logger.Debug()
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		ev = r.logger.Error().Err(err)
	}
	ev.Str("query", name).Str("op", op).Dur("duration", r.now().Sub(start)).Msg("sql")
}

type loggingRow struct {
	row    pgx.Row
	runner *SQLRunner
	name   string
	start  time.Time
}

func (l loggingRow) Scan(dest ...any) error {
	err := l.row.Scan(dest...)
	l.runner.log(l.name, "query_row", l.start, err)
	return err
}

type loggingRows struct {
	pgx.Rows
	runner *SQLRunner
	name   string
	start  time.Time
}

func (l loggingRows) Close() {
	l.Rows.Close()
	l.runner.log(l.name, "query", l.start, l.Rows.Err())
}

// QueryName extracts the statement name or returns "anonymous".
func QueryName(query string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(query), "\n")
	first = strings.TrimSpace(first)
	if !strings.HasPrefix(first, namePrefix) {
		return "anonymous"
	}
	if name := strings.TrimSpace(strings.TrimPrefix(first, namePrefix)); name != "" {
		return name
	}
	return "anonymous"
}

var _ SQLExecutor = (*SQLRunner)(nil)
