package cli

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/locvowork/hrms_lite/internal/database"
	"github.com/locvowork/hrms_lite/internal/testfixtures"
)

// newTestOptions migrates a temporary store and hands every command its own
// connection to it, since commands close the handle they are given.
func newTestOptions(t *testing.T) *RootOptions {
	t.Helper()
	cfg := testfixtures.SQLiteConfig(t)
	testfixtures.OpenSQLite(t, cfg)
	return &RootOptions{
		OpenDB: func(ctx context.Context) (*sql.DB, error) {
			return database.Open(ctx, cfg)
		},
	}
}

func execute(t *testing.T, opts *RootOptions, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommandWithOptions(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "hrmsctl", cmd.Use)

	for _, name := range []string{"seed", "clear", "export"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "command %s should exist", name)
		assert.Equal(t, name, sub.Name())
	}

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
}

func TestSeedExportClear(t *testing.T) {
	opts := newTestOptions(t)

	out, err := execute(t, opts, "", "seed", "--employees", "3", "--days", "2", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 3 employees and 6 attendance records")

	path := filepath.Join(t.TempDir(), "out.xlsx")
	out, err = execute(t, opts, "", "export", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	total, err := f.GetCellValue("Employees", "A3")
	require.NoError(t, err)
	assert.Equal(t, "3", total)
	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	assert.Len(t, rows, 2+6)

	out, err = execute(t, opts, "no\n", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")

	out, err = execute(t, opts, "", "clear", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 3 employees")
}

func TestExport_CSVToStdout(t *testing.T) {
	opts := newTestOptions(t)

	_, err := execute(t, opts, "", "seed", "--employees", "1", "--days", "1", "--seed", "1")
	require.NoError(t, err)

	out, err := execute(t, opts, "", "export", "--format", "csv", "--sheet", "Attendance", "-o", "-")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Employee ID,Date,Status", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "EMP0001,"))

	_, err = execute(t, opts, "", "export", "--format", "pdf")
	assert.Error(t, err)
}
