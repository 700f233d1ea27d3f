package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/locvowork/hrms_lite/internal/repository/builder"
)

const (
	employeesTable  = "employees"
	attendanceTable = "attendance"
)

// Option customises a repository.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the source of created_at timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// stamp returns the created_at value for a new row. Postgres keeps
// microseconds, so anything finer is dropped up front to keep the returned
// entity identical to what is read back later.
func (o options) stamp() time.Time {
	return o.now().UTC().Truncate(time.Microsecond)
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// exists runs SELECT 1 ... LIMIT 1 against table with the given condition.
func exists(ctx context.Context, q queryer, table, condition string, args ...interface{}) (bool, error) {
	query, qArgs := builder.NewSQLBuilder().
		Select("1").
		From(table).
		Where(condition, args...).
		Limit(1).
		Build()

	var one int
	err := q.QueryRowContext(ctx, query, qArgs...).Scan(&one)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	default:
		return false, fmt.Errorf("check %s: %w", table, err)
	}
}

func employeeExists(ctx context.Context, q queryer, employeeID string) (bool, error) {
	return exists(ctx, q, employeesTable, "employee_id = ?", employeeID)
}

func count(ctx context.Context, q queryer, table string) (int64, error) {
	query, args := builder.NewSQLBuilder().Count(table).Build()
	var n int64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
