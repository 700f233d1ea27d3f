package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/locvowork/hrms_lite/internal/database"
	"github.com/locvowork/hrms_lite/internal/domain"
	"github.com/locvowork/hrms_lite/internal/repository/builder"
)

var attendanceColumns = []string{"employee_id", "date", "status", "created_at"}

type attendanceRepository struct {
	db   *sql.DB
	opts options
}

// NewAttendanceRepository creates a new instance of AttendanceRepository
func NewAttendanceRepository(db *sql.DB, opts ...Option) domain.AttendanceRepository {
	return &attendanceRepository{db: db, opts: buildOptions(opts)}
}

// Create records a mark for (employee, date). Missing employees yield
// domain.ErrNotFound, an existing mark for the same day domain.ErrConflict.
func (r *attendanceRepository) Create(ctx context.Context, a *domain.Attendance) error {
	createdAt := r.opts.stamp()

	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		found, err := employeeExists(ctx, tx, a.EmployeeID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("employee %q: %w", a.EmployeeID, domain.ErrNotFound)
		}

		marked, err := exists(ctx, tx, attendanceTable, "employee_id = ? AND date = ?", a.EmployeeID, a.Date)
		if err != nil {
			return err
		}
		if marked {
			return fmt.Errorf("attendance %q on %s: %w", a.EmployeeID, a.Date, domain.ErrConflict)
		}

		query, args := builder.NewSQLBuilder().
			Insert(attendanceTable, attendanceColumns...).
			Values(a.EmployeeID, a.Date, string(a.Status), database.FormatTimestamp(createdAt)).
			Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			switch {
			case database.IsUniqueViolation(err):
				return fmt.Errorf("attendance %q on %s: %w", a.EmployeeID, a.Date, domain.ErrConflict)
			case database.IsForeignKeyViolation(err):
				return fmt.Errorf("employee %q: %w", a.EmployeeID, domain.ErrNotFound)
			}
			return fmt.Errorf("insert attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.CreatedAt = createdAt
	return nil
}

// ListByEmployee returns the employee's attendance, latest date first.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Attendance, error) {
	records := make([]domain.Attendance, 0)

	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		found, err := employeeExists(ctx, tx, employeeID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("employee %q: %w", employeeID, domain.ErrNotFound)
		}

		query, args := builder.NewSQLBuilder().
			Select(attendanceColumns...).
			From(attendanceTable).
			Where("employee_id = ?", employeeID).
			OrderBy("date DESC").
			OrderBy("id DESC").
			Build()

		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("list attendance: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var a domain.Attendance
			var status string
			var createdAt database.Timestamp
			if err := rows.Scan(&a.EmployeeID, &a.Date, &status, &createdAt); err != nil {
				return fmt.Errorf("scan attendance: %w", err)
			}
			a.Status = domain.AttendanceStatus(status)
			a.CreatedAt = createdAt.Time
			records = append(records, a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Count returns the number of attendance rows.
func (r *attendanceRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, attendanceTable)
}
