package domain

import "context"

// EmployeeRepository defines the interface for employee data access.
// Create and Delete enforce existence and uniqueness themselves; callers
// only pass normalized, validated data.
type EmployeeRepository interface {
	Create(ctx context.Context, e *Employee) error
	List(ctx context.Context) ([]Employee, error)
	Delete(ctx context.Context, employeeID string) error
	Count(ctx context.Context) (int64, error)
}

// AttendanceRepository defines the interface for attendance data access
type AttendanceRepository interface {
	Create(ctx context.Context, a *Attendance) error
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	Count(ctx context.Context) (int64, error)
}
