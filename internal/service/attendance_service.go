package service

import (
	"context"

	"github.com/locvowork/hrms_lite/internal/domain"
	"github.com/locvowork/hrms_lite/internal/logger"
)

// AttendanceService handles business logic for attendance marks
type AttendanceService interface {
	Mark(ctx context.Context, in domain.AttendanceInput) (*domain.Attendance, error)
	ListForEmployee(ctx context.Context, employeeID string) (*domain.AttendanceList, error)
}

type attendanceService struct {
	repo domain.AttendanceRepository
}

// NewAttendanceService creates a new AttendanceService instance
func NewAttendanceService(repo domain.AttendanceRepository) AttendanceService {
	return &attendanceService{repo: repo}
}

// Mark validates in and records it. Status and date are taken as given.
func (s *attendanceService) Mark(ctx context.Context, in domain.AttendanceInput) (*domain.Attendance, error) {
	date, err := ValidateAttendance(in)
	if err != nil {
		return nil, err
	}

	a := &domain.Attendance{
		EmployeeID: in.EmployeeID,
		Date:       date,
		Status:     domain.AttendanceStatus(in.Status),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	logger.InfoLog(ctx, "attendance %s marked %s for %s", a.Date, a.Status, a.EmployeeID)
	return a, nil
}

func (s *attendanceService) ListForEmployee(ctx context.Context, employeeID string) (*domain.AttendanceList, error) {
	records, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return &domain.AttendanceList{EmployeeID: employeeID, Records: records}, nil
}
