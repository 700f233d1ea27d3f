package service

import (
	"context"

	"github.com/locvowork/hrms_lite/internal/domain"
	"github.com/locvowork/hrms_lite/internal/logger"
)

// EmployeeService handles business logic for employees
type EmployeeService interface {
	Create(ctx context.Context, in domain.EmployeeInput) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Delete(ctx context.Context, employeeID string) error
}

type employeeService struct {
	repo domain.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService instance
func NewEmployeeService(repo domain.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

// Create normalizes and validates in before handing it to the store.
func (s *employeeService) Create(ctx context.Context, in domain.EmployeeInput) (*domain.Employee, error) {
	in = NormalizeEmployee(in)
	if err := ValidateEmployee(in); err != nil {
		return nil, err
	}

	e := &domain.Employee{
		EmployeeID: in.EmployeeID,
		FullName:   in.FullName,
		Email:      in.Email,
		Department: in.Department,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	logger.InfoLog(ctx, "employee %s created", e.EmployeeID)
	return e, nil
}

func (s *employeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.List(ctx)
}

// Delete removes the employee together with its attendance.
func (s *employeeService) Delete(ctx context.Context, employeeID string) error {
	if err := s.repo.Delete(ctx, employeeID); err != nil {
		return err
	}
	logger.InfoLog(ctx, "employee %s deleted", employeeID)
	return nil
}
