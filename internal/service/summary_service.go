package service

import (
	"context"

	"github.com/locvowork/hrms_lite/internal/domain"
)

// SummaryService reports the dashboard counters.
type SummaryService interface {
	Summary(ctx context.Context) (*domain.Summary, error)
}

type summaryService struct {
	employees  domain.EmployeeRepository
	attendance domain.AttendanceRepository
}

// NewSummaryService creates a new SummaryService instance
func NewSummaryService(employees domain.EmployeeRepository, attendance domain.AttendanceRepository) SummaryService {
	return &summaryService{employees: employees, attendance: attendance}
}

func (s *summaryService) Summary(ctx context.Context) (*domain.Summary, error) {
	totalEmployees, err := s.employees.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalAttendance, err := s.attendance.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Summary{
		Employees:         totalEmployees,
		AttendanceRecords: totalAttendance,
	}, nil
}
