// Package report renders bound data into an xlsx workbook laid out by a YAML
// template.
package report

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

const (
	SectionDirectionHorizontal = "horizontal"
	SectionDirectionVertical   = "vertical"
)

//go:embed default_report.yaml
var defaultTemplate []byte

// ReportTemplate represents the YAML structure.
type ReportTemplate struct {
	Sheets []SheetTemplate `yaml:"sheets"`
}

// SheetTemplate represents a sheet in the YAML.
type SheetTemplate struct {
	Name     string          `yaml:"name"`
	Sections []SectionConfig `yaml:"sections"`
}

// SectionConfig defines a block of rows in a sheet. Data is bound at runtime
// by ID.
type SectionConfig struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Locked      bool           `yaml:"locked"`
	ShowHeader  bool           `yaml:"show_header"`
	Direction   string         `yaml:"direction"`
	Position    string         `yaml:"position"`
	TitleStyle  *StyleTemplate `yaml:"title_style"`
	HeaderStyle *StyleTemplate `yaml:"header_style"`
	Columns     []ColumnConfig `yaml:"columns"`
}

// ColumnConfig maps a struct field to a column.
type ColumnConfig struct {
	FieldName string  `yaml:"field_name"`
	Header    string  `yaml:"header"`
	Width     float64 `yaml:"width"`
}

type StyleTemplate struct {
	Font *FontTemplate `yaml:"font"`
	Fill *FillTemplate `yaml:"fill"`
}

type FontTemplate struct {
	Bold  bool   `yaml:"bold"`
	Color string `yaml:"color"`
}

type FillTemplate struct {
	Color string `yaml:"color"`
}

// DataExporter binds data to a template and writes the workbook.
type DataExporter struct {
	template *ReportTemplate
	data     map[string]interface{}
}

func NewDataExporter(tmpl *ReportTemplate) *DataExporter {
	return &DataExporter{
		template: tmpl,
		data:     make(map[string]interface{}),
	}
}

// NewDefaultExporter uses the built-in roster and attendance layout.
func NewDefaultExporter() (*DataExporter, error) {
	return NewDataExporterFromYaml(bytes.NewReader(defaultTemplate))
}

func NewDataExporterFromYaml(r io.Reader) (*DataExporter, error) {
	var tmpl ReportTemplate
	if err := yaml.NewDecoder(r).Decode(&tmpl); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(tmpl.Sheets) == 0 {
		return nil, fmt.Errorf("report template has no sheets")
	}
	return NewDataExporter(&tmpl), nil
}

func NewDataExporterFromYamlFile(path string) (*DataExporter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open yaml file: %w", err)
	}
	defer f.Close()
	return NewDataExporterFromYaml(f)
}

// BindSectionData binds a slice of structs to a section ID.
func (e *DataExporter) BindSectionData(id string, data interface{}) *DataExporter {
	e.data[id] = data
	return e
}

// BuildExcel renders every sheet of the template. The caller closes the file.
func (e *DataExporter) BuildExcel() (*excelize.File, error) {
	f := excelize.NewFile()

	for i, sheetTmpl := range e.template.Sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheetTmpl.Name); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(sheetTmpl.Name); err != nil {
			f.Close()
			return nil, err
		}

		if err := e.renderSections(f, sheetTmpl.Name, sheetTmpl.Sections); err != nil {
			f.Close()
			return nil, fmt.Errorf("render sheet %q: %w", sheetTmpl.Name, err)
		}
	}

	return f, nil
}

// ExportToExcel writes the workbook to path.
func (e *DataExporter) ExportToExcel(path string) error {
	f, err := e.BuildExcel()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// ToWriter writes the workbook to w.
func (e *DataExporter) ToWriter(w io.Writer) error {
	f, err := e.BuildExcel()
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

// ToCSV writes one sheet as CSV.
func (e *DataExporter) ToCSV(w io.Writer, sheet string) error {
	f, err := e.BuildExcel()
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to get rows: %w", err)
	}

	csvWriter := csv.NewWriter(w)
	if err := csvWriter.WriteAll(rows); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}
	return nil
}

func (e *DataExporter) renderSections(f *excelize.File, sheet string, sections []SectionConfig) error {
	maxRow := 1
	nextColHorizontal := 1
	hasLockedSections := false

	for _, sec := range sections {
		if sec.Locked {
			hasLockedSections = true
		}

		startCol, startRow := 1, maxRow
		if sec.Direction == SectionDirectionHorizontal {
			startCol, startRow = nextColHorizontal, 1
		}
		if sec.Position != "" {
			c, r, err := excelize.CellNameToCoordinates(sec.Position)
			if err != nil {
				return fmt.Errorf("section %q: %w", sec.ID, err)
			}
			startCol, startRow = c, r
		}

		currentRow := startRow

		if sec.Title != "" {
			styleID, err := createStyle(f, sec.TitleStyle, sec.Locked)
			if err != nil {
				return err
			}
			cell, _ := excelize.CoordinatesToCellName(startCol, currentRow)
			if err := f.SetCellValue(sheet, cell, sec.Title); err != nil {
				return err
			}
			endCell := cell
			if len(sec.Columns) > 1 {
				endCell, _ = excelize.CoordinatesToCellName(startCol+len(sec.Columns)-1, currentRow)
				if err := f.MergeCell(sheet, cell, endCell); err != nil {
					return err
				}
			}
			if err := f.SetCellStyle(sheet, cell, endCell, styleID); err != nil {
				return err
			}
			currentRow++
		}

		if sec.ShowHeader {
			styleID, err := createStyle(f, sec.HeaderStyle, sec.Locked)
			if err != nil {
				return err
			}
			for i, col := range sec.Columns {
				cell, _ := excelize.CoordinatesToCellName(startCol+i, currentRow)
				if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
					return err
				}
				if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
					return err
				}
				if col.Width > 0 {
					colName, _ := excelize.ColumnNumberToName(startCol + i)
					if err := f.SetColWidth(sheet, colName, colName, col.Width); err != nil {
						return err
					}
				}
			}
			currentRow++
		}

		dataStyleID, err := createStyle(f, nil, sec.Locked)
		if err != nil {
			return err
		}
		dataVal := reflect.ValueOf(e.data[sec.ID])
		if dataVal.Kind() == reflect.Slice {
			for i := 0; i < dataVal.Len(); i++ {
				item := dataVal.Index(i)
				for j, col := range sec.Columns {
					cell, _ := excelize.CoordinatesToCellName(startCol+j, currentRow)
					if err := f.SetCellValue(sheet, cell, extractValue(item, col.FieldName)); err != nil {
						return err
					}
				}
				if len(sec.Columns) > 0 {
					first, _ := excelize.CoordinatesToCellName(startCol, currentRow)
					last, _ := excelize.CoordinatesToCellName(startCol+len(sec.Columns)-1, currentRow)
					if err := f.SetCellStyle(sheet, first, last, dataStyleID); err != nil {
						return err
					}
				}
				currentRow++
			}
		}

		// blank row between stacked sections
		if currentRow+1 > maxRow {
			maxRow = currentRow + 1
		}
		nextColHorizontal = startCol + len(sec.Columns) + 1
	}

	// locked cells are only enforced on a protected sheet
	if hasLockedSections {
		return f.ProtectSheet(sheet, &excelize.SheetProtectionOptions{
			SelectLockedCells:   true,
			SelectUnlockedCells: true,
		})
	}
	return nil
}

// extractValue reads fieldName from a struct (or pointer to one) and turns it
// into something excelize writes as plain text or a number.
func extractValue(item reflect.Value, fieldName string) interface{} {
	for item.Kind() == reflect.Ptr || item.Kind() == reflect.Interface {
		if item.IsNil() {
			return ""
		}
		item = item.Elem()
	}
	if item.Kind() != reflect.Struct {
		return ""
	}

	field := item.FieldByName(fieldName)
	if !field.IsValid() || !field.CanInterface() {
		return ""
	}

	switch v := field.Interface().(type) {
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.UTC().Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	}
	if field.Kind() == reflect.String {
		return field.String()
	}
	return field.Interface()
}

func createStyle(f *excelize.File, tmpl *StyleTemplate, locked bool) (int, error) {
	style := &excelize.Style{
		Protection: &excelize.Protection{Locked: locked},
	}
	if tmpl != nil && tmpl.Font != nil {
		style.Font = &excelize.Font{
			Bold:  tmpl.Font.Bold,
			Color: strings.TrimPrefix(tmpl.Font.Color, "#"),
		}
	}
	if tmpl != nil && tmpl.Fill != nil {
		style.Fill = excelize.Fill{
			Type:    "pattern",
			Color:   []string{strings.TrimPrefix(tmpl.Fill.Color, "#")},
			Pattern: 1,
		}
	}
	return f.NewStyle(style)
}
