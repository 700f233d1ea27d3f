package report

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/locvowork/hrms_lite/internal/domain"
)

func sampleExporter(t *testing.T) *DataExporter {
	t.Helper()
	exporter, err := NewDefaultExporter()
	require.NoError(t, err)

	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	exporter.
		BindSectionData("summary", []domain.Summary{{Employees: 2, AttendanceRecords: 3}}).
		BindSectionData("employees", []domain.Employee{
			{EmployeeID: "E2", FullName: "Bob", Email: "bob@x.com", Department: "Ops", CreatedAt: created.Add(time.Hour)},
			{EmployeeID: "E1", FullName: "Alice", Email: "alice@x.com", Department: "Finance", CreatedAt: created},
		}).
		BindSectionData("attendance", []domain.Attendance{
			{EmployeeID: "E1", Date: domain.NewDate(2024, 5, 2), Status: domain.StatusAbsent},
			{EmployeeID: "E1", Date: domain.NewDate(2024, 5, 1), Status: domain.StatusPresent},
			{EmployeeID: "E2", Date: domain.NewDate(2024, 5, 1), Status: domain.StatusPresent},
		})
	return exporter
}

func TestDefaultExporter_Layout(t *testing.T) {
	f, err := sampleExporter(t).BuildExcel()
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Employees", "Attendance"}, f.GetSheetList())

	cells := map[string]string{
		"A1": "HRMS Lite summary",
		"A2": "Employees",
		"B2": "Attendance records",
		"A3": "2",
		"B3": "3",
		"A5": "Employees",
		"A6": "Employee ID",
		"E6": "Created at",
		"A7": "E2",
		"C8": "alice@x.com",
		"E8": "2024-05-01T09:00:00Z",
	}
	for cell, want := range cells {
		got, err := f.GetCellValue("Employees", cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Employee ID", "Date", "Status"}, rows[1])
	assert.Equal(t, []string{"E1", "2024-05-02", "Absent"}, rows[2])

	width, err := f.GetColWidth("Employees", "C")
	require.NoError(t, err)
	assert.Equal(t, 32.0, width)

	styleID, err := f.GetCellStyle("Employees", "A6")
	require.NoError(t, err)
	assert.NotZero(t, styleID)
}

func TestDataExporter_HorizontalAndUnlocked(t *testing.T) {
	yamlConfig := `
sheets:
  - name: "Side"
    sections:
      - id: "left"
        show_header: true
        direction: "horizontal"
        columns:
          - { field_name: "EmployeeID", header: "ID" }
      - id: "right"
        show_header: true
        direction: "horizontal"
        columns:
          - { field_name: "Missing", header: "Nothing" }
          - { field_name: "Department", header: "Dept" }
`
	exporter, err := NewDataExporterFromYaml(strings.NewReader(yamlConfig))
	require.NoError(t, err)

	emps := []*domain.Employee{{EmployeeID: "E1", Department: "Ops"}, nil}
	exporter.BindSectionData("left", emps).BindSectionData("right", emps)

	f, err := exporter.BuildExcel()
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Side")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ID", "", "Nothing", "Dept"}, rows[0])
	assert.Equal(t, []string{"E1", "", "", "Ops"}, rows[1])
}

func TestDataExporter_ToCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleExporter(t).ToCSV(&buf, "Attendance"))

	assert.Equal(t,
		"Attendance\nEmployee ID,Date,Status\nE1,2024-05-02,Absent\nE1,2024-05-01,Present\nE2,2024-05-01,Present\n",
		buf.String())

	assert.Error(t, sampleExporter(t).ToCSV(&buf, "Nope"))
}

func TestDataExporter_ExportToExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hrms.xlsx")
	require.NoError(t, sampleExporter(t).ExportToExcel(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Attendance", "C4")
	require.NoError(t, err)
	assert.Equal(t, "Present", v)
}

func TestNewDataExporterFromYaml_Invalid(t *testing.T) {
	_, err := NewDataExporterFromYaml(strings.NewReader("sheets: ["))
	assert.Error(t, err)

	_, err = NewDataExporterFromYaml(strings.NewReader("sheets: []"))
	assert.Error(t, err)

	_, err = NewDataExporterFromYamlFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
