// Package seeder fills a store with demo employees and attendance marks.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/locvowork/hrms_lite/internal/domain"
	"github.com/locvowork/hrms_lite/internal/logger"
)

type SeedPreset string

const (
	PresetSmall  SeedPreset = "small"
	PresetMedium SeedPreset = "medium"
	PresetLarge  SeedPreset = "large"
)

var (
	firstNames  = []string{"An", "Binh", "Chi", "Dung", "Giang", "Hoa", "Khanh", "Linh", "Minh", "Nam", "Phuong", "Quang", "Son", "Thao", "Tuan", "Vy"}
	lastNames   = []string{"Nguyen", "Tran", "Le", "Pham", "Hoang", "Vo", "Dang", "Bui"}
	departments = []string{"Engineering", "Finance", "Operations", "Sales", "People", "Support"}
)

// GetPresetConfig returns the employee count and days of attendance per employee for a preset.
func GetPresetConfig(preset SeedPreset) (numEmployees, numDays int) {
	switch preset {
	case PresetSmall:
		return 5, 5
	case PresetMedium:
		return 25, 20
	case PresetLarge:
		return 100, 60
	default:
		return 25, 20
	}
}

// Stats reports what a seed run inserted.
type Stats struct {
	Employees  int
	Attendance int
}

type DataSeeder struct {
	employees  domain.EmployeeRepository
	attendance domain.AttendanceRepository
	rnd        *rand.Rand
	today      time.Time
}

func NewDataSeeder(employees domain.EmployeeRepository, attendance domain.AttendanceRepository, seed int64) *DataSeeder {
	return &DataSeeder{
		employees:  employees,
		attendance: attendance,
		rnd:        rand.New(rand.NewSource(seed)),
		today:      time.Now().UTC(),
	}
}

// SeedData inserts numEmployees employees, each marked on the numDays days
// up to today. Employees that already exist are skipped along with their
// attendance, so seeding twice is harmless.
func (ds *DataSeeder) SeedData(ctx context.Context, numEmployees, numDays int) (Stats, error) {
	start := time.Now()
	logger.InfoLog(ctx, "Seeding %d employees with %d days of attendance", numEmployees, numDays)

	var stats Stats
	for i := 1; i <= numEmployees; i++ {
		first := firstNames[ds.rnd.Intn(len(firstNames))]
		last := lastNames[ds.rnd.Intn(len(lastNames))]
		emp := &domain.Employee{
			EmployeeID: fmt.Sprintf("EMP%04d", i),
			FullName:   first + " " + last,
			Email:      fmt.Sprintf("emp%04d@hrms.local", i),
			Department: departments[ds.rnd.Intn(len(departments))],
		}
		if err := ds.employees.Create(ctx, emp); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				logger.DebugLog(ctx, "Employee %s already exists, skipping", emp.EmployeeID)
				continue
			}
			return stats, fmt.Errorf("failed to insert employee %s: %w", emp.EmployeeID, err)
		}
		stats.Employees++

		for d := 0; d < numDays; d++ {
			day := ds.today.AddDate(0, 0, -d)
			status := domain.StatusPresent
			if ds.rnd.Intn(10) == 0 {
				status = domain.StatusAbsent
			}
			rec := &domain.Attendance{
				EmployeeID: emp.EmployeeID,
				Date:       domain.NewDate(day.Year(), day.Month(), day.Day()),
				Status:     status,
			}
			if err := ds.attendance.Create(ctx, rec); err != nil {
				return stats, fmt.Errorf("failed to mark attendance for %s: %w", emp.EmployeeID, err)
			}
			stats.Attendance++
		}
	}

	logger.InfoLog(ctx, "Seeded %d employees and %d attendance records in %v", stats.Employees, stats.Attendance, time.Since(start))
	return stats, nil
}

// ClearData deletes every employee. Attendance goes with them.
func (ds *DataSeeder) ClearData(ctx context.Context) (int, error) {
	employees, err := ds.employees.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list employees: %w", err)
	}

	deleted := 0
	for _, emp := range employees {
		if err := ds.employees.Delete(ctx, emp.EmployeeID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return deleted, fmt.Errorf("failed to delete employee %s: %w", emp.EmployeeID, err)
		}
		deleted++
	}

	logger.InfoLog(ctx, "Cleared %d employees", deleted)
	return deleted, nil
}
