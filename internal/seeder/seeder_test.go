package seeder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/hrms_lite/internal/repository"
	"github.com/locvowork/hrms_lite/internal/seeder"
	"github.com/locvowork/hrms_lite/internal/testfixtures"
)

func TestGetPresetConfig(t *testing.T) {
	emps, days := seeder.GetPresetConfig(seeder.PresetSmall)
	assert.Equal(t, 5, emps)
	assert.Equal(t, 5, days)

	emps, days = seeder.GetPresetConfig("unknown")
	assert.Equal(t, 25, emps)
	assert.Equal(t, 20, days)
}

func TestSeedAndClear(t *testing.T) {
	ctx := context.Background()
	db := testfixtures.NewSQLiteDB(t)
	empRepo := repository.NewEmployeeRepository(db)
	attRepo := repository.NewAttendanceRepository(db)
	ds := seeder.NewDataSeeder(empRepo, attRepo, 42)

	stats, err := ds.SeedData(ctx, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, seeder.Stats{Employees: 4, Attendance: 12}, stats)

	records, err := attRepo.ListByEmployee(ctx, "EMP0001")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.True(t, records[0].Date.After(records[1].Date.Time))

	// second run skips what is already there
	stats, err = ds.SeedData(ctx, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, seeder.Stats{Employees: 1, Attendance: 3}, stats)

	n, err := empRepo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)

	deleted, err := ds.ClearData(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, deleted)

	n, err = empRepo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = attRepo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
