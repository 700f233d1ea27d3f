package domain

import "time"

// AttendanceStatus is the daily presence mark. Values are case-sensitive.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// Employee represents the employees table
type Employee struct {
	EmployeeID string    `json:"employee_id" db:"employee_id"`
	FullName   string    `json:"full_name" db:"full_name"`
	Email      string    `json:"email" db:"email"`
	Department string    `json:"department" db:"department"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// EmployeeInput is the create payload (EmployeeIn on the wire).
type EmployeeInput struct {
	EmployeeID string `json:"employee_id" validate:"min=2,max=50"`
	FullName   string `json:"full_name" validate:"min=2,max=120"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"min=2,max=80"`
}

// Attendance represents the attendance table
type Attendance struct {
	EmployeeID string           `json:"employee_id" db:"employee_id"`
	Date       Date             `json:"date" db:"date"`
	Status     AttendanceStatus `json:"status" db:"status"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
}

// AttendanceInput is the mark-attendance payload (AttendanceIn on the wire).
// Date stays a string until validation parses it.
type AttendanceInput struct {
	EmployeeID string `json:"employee_id" validate:"min=2,max=50"`
	Date       string `json:"date" validate:"required"`
	Status     string `json:"status" validate:"oneof=Present Absent"`
}

// AttendanceList is the per-employee attendance ledger, newest date first.
type AttendanceList struct {
	EmployeeID string       `json:"employee_id"`
	Records    []Attendance `json:"records"`
}

// Summary holds the dashboard counters.
type Summary struct {
	Employees         int64 `json:"employees"`
	AttendanceRecords int64 `json:"attendance_records"`
}
