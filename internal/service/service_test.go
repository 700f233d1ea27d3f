package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/hrms_lite/internal/domain"
)

type fakeEmployeeRepo struct {
	created []domain.Employee
	err     error
	count   int64
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *domain.Employee) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *e)
	return nil
}

func (f *fakeEmployeeRepo) List(context.Context) ([]domain.Employee, error) {
	return f.created, f.err
}

func (f *fakeEmployeeRepo) Delete(context.Context, string) error { return f.err }

func (f *fakeEmployeeRepo) Count(context.Context) (int64, error) { return f.count, f.err }

type fakeAttendanceRepo struct {
	created []domain.Attendance
	err     error
	count   int64
}

func (f *fakeAttendanceRepo) Create(_ context.Context, a *domain.Attendance) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *a)
	return nil
}

func (f *fakeAttendanceRepo) ListByEmployee(context.Context, string) ([]domain.Attendance, error) {
	return f.created, f.err
}

func (f *fakeAttendanceRepo) Count(context.Context) (int64, error) { return f.count, f.err }

func validInput() domain.EmployeeInput {
	return domain.EmployeeInput{
		EmployeeID: "  E1 ",
		FullName:   " Ada Lovelace ",
		Email:      "  Ada@Example.COM ",
		Department: " Engineering\t",
	}
}

func TestEmployeeService_CreateNormalizes(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	svc := NewEmployeeService(repo)

	e, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "E1", e.EmployeeID)
	assert.Equal(t, "Ada Lovelace", e.FullName)
	assert.Equal(t, "ada@example.com", e.Email)
	assert.Equal(t, "Engineering", e.Department)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "ada@example.com", repo.created[0].Email)
}

func TestEmployeeService_CreateValidation(t *testing.T) {
	cases := map[string]struct {
		mutate func(*domain.EmployeeInput)
		field  string
	}{
		"id too short":         {func(in *domain.EmployeeInput) { in.EmployeeID = " X " }, "employee_id"},
		"id too long":          {func(in *domain.EmployeeInput) { in.EmployeeID = strings.Repeat("a", 51) }, "employee_id"},
		"name too short":       {func(in *domain.EmployeeInput) { in.FullName = "A" }, "full_name"},
		"name too long":        {func(in *domain.EmployeeInput) { in.FullName = strings.Repeat("n", 121) }, "full_name"},
		"bad email":            {func(in *domain.EmployeeInput) { in.Email = "not-an-email" }, "email"},
		"missing email":        {func(in *domain.EmployeeInput) { in.Email = "   " }, "email"},
		"department too short": {func(in *domain.EmployeeInput) { in.Department = "D" }, "department"},
		"department too long":  {func(in *domain.EmployeeInput) { in.Department = strings.Repeat("d", 81) }, "department"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &fakeEmployeeRepo{}
			in := validInput()
			tc.mutate(&in)

			_, err := NewEmployeeService(repo).Create(context.Background(), in)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.FieldErrors, tc.field)
			assert.Empty(t, repo.created, "store must not be reached")
		})
	}
}

func TestEmployeeService_LengthBoundsCountRunes(t *testing.T) {
	in := validInput()
	in.EmployeeID = strings.Repeat("é", 50)
	in.FullName = "Zoë"

	_, err := NewEmployeeService(&fakeEmployeeRepo{}).Create(context.Background(), in)
	assert.NoError(t, err)
}

func TestEmployeeService_PassesStoreErrorsThrough(t *testing.T) {
	repo := &fakeEmployeeRepo{err: domain.ErrConflict}

	_, err := NewEmployeeService(repo).Create(context.Background(), validInput())
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAttendanceService_Mark(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(repo)

	a, err := svc.Mark(context.Background(), domain.AttendanceInput{EmployeeID: "E1", Date: "2024-05-01", Status: "Present"})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", a.Date.String())
	assert.Equal(t, domain.StatusPresent, a.Status)
	require.Len(t, repo.created, 1)
}

func TestAttendanceService_MarkValidation(t *testing.T) {
	cases := map[string]struct {
		in    domain.AttendanceInput
		field string
	}{
		"lower-case status": {domain.AttendanceInput{EmployeeID: "E1", Date: "2024-05-01", Status: "present"}, "status"},
		"unknown status":    {domain.AttendanceInput{EmployeeID: "E1", Date: "2024-05-01", Status: "Late"}, "status"},
		"bad date":          {domain.AttendanceInput{EmployeeID: "E1", Date: "2024-02-30", Status: "Absent"}, "date"},
		"missing date":      {domain.AttendanceInput{EmployeeID: "E1", Status: "Absent"}, "date"},
		"short id":          {domain.AttendanceInput{EmployeeID: "E", Date: "2024-05-01", Status: "Absent"}, "employee_id"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &fakeAttendanceRepo{}

			_, err := NewAttendanceService(repo).Mark(context.Background(), tc.in)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.FieldErrors, tc.field)
			assert.Empty(t, repo.created)
		})
	}
}

func TestAttendanceService_ListForEmployee(t *testing.T) {
	repo := &fakeAttendanceRepo{created: []domain.Attendance{{EmployeeID: "E1", Date: domain.NewDate(2024, 1, 1), Status: domain.StatusAbsent}}}

	list, err := NewAttendanceService(repo).ListForEmployee(context.Background(), "E1")
	require.NoError(t, err)
	assert.Equal(t, "E1", list.EmployeeID)
	assert.Len(t, list.Records, 1)

	repo.err = domain.ErrNotFound
	_, err = NewAttendanceService(repo).ListForEmployee(context.Background(), "E1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSummaryService(t *testing.T) {
	svc := NewSummaryService(&fakeEmployeeRepo{count: 3}, &fakeAttendanceRepo{count: 5})

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.Summary{Employees: 3, AttendanceRecords: 5}, summary)

	failing := NewSummaryService(&fakeEmployeeRepo{err: errors.New("db down")}, &fakeAttendanceRepo{})
	_, err = failing.Summary(context.Background())
	assert.EqualError(t, err, "db down")
}
