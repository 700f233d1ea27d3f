package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/locvowork/hrms_lite/internal/database"
	"github.com/locvowork/hrms_lite/internal/domain"
	"github.com/locvowork/hrms_lite/internal/repository/builder"
)

var employeeColumns = []string{"employee_id", "full_name", "email", "department", "created_at"}

type employeeRepository struct {
	db   *sql.DB
	opts options
}

// NewEmployeeRepository creates a new instance of EmployeeRepository
func NewEmployeeRepository(db *sql.DB, opts ...Option) domain.EmployeeRepository {
	return &employeeRepository{db: db, opts: buildOptions(opts)}
}

// Create inserts e and sets its CreatedAt. It returns domain.ErrConflict when
// the employee_id or email is already taken, whether that is seen by the
// pre-check or by the unique constraints during the insert.
func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	createdAt := r.opts.stamp()

	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		taken, err := exists(ctx, tx, employeesTable, "(employee_id = ? OR email = ?)", e.EmployeeID, e.Email)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("employee %q: %w", e.EmployeeID, domain.ErrConflict)
		}

		query, args := builder.NewSQLBuilder().
			Insert(employeesTable, employeeColumns...).
			Values(e.EmployeeID, e.FullName, e.Email, e.Department, database.FormatTimestamp(createdAt)).
			Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if database.IsUniqueViolation(err) {
				return fmt.Errorf("employee %q: %w", e.EmployeeID, domain.ErrConflict)
			}
			return fmt.Errorf("insert employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	e.CreatedAt = createdAt
	return nil
}

// List returns every employee, most recently created first.
func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	query, args := builder.NewSQLBuilder().
		Select(employeeColumns...).
		From(employeesTable).
		OrderBy("created_at DESC").
		OrderBy("id DESC").
		Build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		var e domain.Employee
		var createdAt database.Timestamp
		if err := rows.Scan(&e.EmployeeID, &e.FullName, &e.Email, &e.Department, &createdAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		e.CreatedAt = createdAt.Time
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

// Delete removes the employee and all of its attendance rows in one
// transaction. It returns domain.ErrNotFound when no such employee exists.
func (r *employeeRepository) Delete(ctx context.Context, employeeID string) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		found, err := employeeExists(ctx, tx, employeeID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("employee %q: %w", employeeID, domain.ErrNotFound)
		}

		query, args := builder.NewSQLBuilder().
			Delete(attendanceTable).
			Where("employee_id = ?", employeeID).
			Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete attendance: %w", err)
		}

		query, args = builder.NewSQLBuilder().
			Delete(employeesTable).
			Where("employee_id = ?", employeeID).
			Build()
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("delete employee: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete employee: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("employee %q: %w", employeeID, domain.ErrNotFound)
		}
		return nil
	})
}

// Count returns the number of employees.
func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, employeesTable)
}
