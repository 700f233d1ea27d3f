package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/locvowork/hrms_lite/internal/domain"
	"github.com/locvowork/hrms_lite/internal/repository"
	"github.com/locvowork/hrms_lite/internal/service"
	"github.com/locvowork/hrms_lite/pkg/dataflow"
	"github.com/locvowork/hrms_lite/pkg/report"
)

// ledgerWorkers bounds concurrent attendance queries during export.
const ledgerWorkers = 4

type exportOptions struct {
	output   string
	template string
	format   string
	sheet    string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the roster and attendance ledger",
		Long: `Export the summary counters, every employee and every attendance record to an
xlsx workbook, or a single sheet of it as CSV. Use "-o -" to write to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "xlsx" && opts.format != "csv" {
				return fmt.Errorf("invalid format %q: must be xlsx or csv", opts.format)
			}

			exporter, err := newExporter(opts.template)
			if err != nil {
				return err
			}

			err = withDB(cmd.Context(), rootOpts, func(db *sql.DB) error {
				return bindReport(cmd.Context(), db, exporter)
			})
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if opts.output != "-" {
				f, err := os.Create(opts.output)
				if err != nil {
					return fmt.Errorf("create %s: %w", opts.output, err)
				}
				defer f.Close()
				w = f
			}

			if opts.format == "csv" {
				err = exporter.ToCSV(w, opts.sheet)
			} else {
				err = exporter.ToWriter(w)
			}
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			if opts.output != "-" {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "hrms_export.xlsx", "output file, - for stdout")
	cmd.Flags().StringVar(&opts.template, "template", "", "YAML layout file (built-in layout when empty)")
	cmd.Flags().StringVar(&opts.format, "format", "xlsx", "output format (xlsx|csv)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "Attendance", "sheet written in csv format")

	return cmd
}

func newExporter(templatePath string) (*report.DataExporter, error) {
	if templatePath == "" {
		return report.NewDefaultExporter()
	}
	return report.NewDataExporterFromYamlFile(templatePath)
}

// bindReport loads the summary, the roster and every employee's attendance
// into the "summary", "employees" and "attendance" sections.
func bindReport(ctx context.Context, db *sql.DB, exporter *report.DataExporter) error {
	empRepo := repository.NewEmployeeRepository(db)
	attRepo := repository.NewAttendanceRepository(db)

	summary, err := service.NewSummaryService(empRepo, attRepo).Summary(ctx)
	if err != nil {
		return fmt.Errorf("failed to load summary: %w", err)
	}

	employees, err := empRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	ledgers := make([][]domain.Attendance, len(employees))
	indexes := make([]interface{}, len(employees))
	for i := range employees {
		indexes[i] = i
	}
	err = dataflow.ForEach(ctx, dataflow.From(ctx, indexes...), func(ctx context.Context, msg interface{}) error {
		i := msg.(int)
		records, err := attRepo.ListByEmployee(ctx, employees[i].EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to list attendance for %s: %w", employees[i].EmployeeID, err)
		}
		ledgers[i] = records
		return nil
	}, dataflow.WithWorkers(ledgerWorkers))
	if err != nil {
		return err
	}

	attendance := make([]domain.Attendance, 0, summary.AttendanceRecords)
	for _, records := range ledgers {
		attendance = append(attendance, records...)
	}

	exporter.
		BindSectionData("summary", []domain.Summary{*summary}).
		BindSectionData("employees", employees).
		BindSectionData("attendance", attendance)
	return nil
}
