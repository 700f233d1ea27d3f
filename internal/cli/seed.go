package cli

import (
	"bufio"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/locvowork/hrms_lite/internal/repository"
	"github.com/locvowork/hrms_lite/internal/seeder"
)

type seedOptions struct {
	preset    string
	employees int
	days      int
	seed      int64
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo employees and attendance",
		Long: `Insert demo employees (EMP0001, EMP0002, ...) with one attendance mark per
day up to today. Employees that already exist are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			numEmployees, numDays := seeder.GetPresetConfig(seeder.SeedPreset(opts.preset))
			if opts.employees > 0 {
				numEmployees = opts.employees
			}
			if opts.days > 0 {
				numDays = opts.days
			}

			return withDB(cmd.Context(), rootOpts, func(db *sql.DB) error {
				ds := seeder.NewDataSeeder(repository.NewEmployeeRepository(db), repository.NewAttendanceRepository(db), opts.seed)
				stats, err := ds.SeedData(cmd.Context(), numEmployees, numDays)
				if err != nil {
					return fmt.Errorf("seeding failed: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d employees and %d attendance records\n", stats.Employees, stats.Attendance)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.preset, "preset", string(seeder.PresetMedium), "data preset: small, medium, large")
	cmd.Flags().IntVar(&opts.employees, "employees", 0, "number of employees (overrides preset)")
	cmd.Flags().IntVar(&opts.days, "days", 0, "days of attendance per employee (overrides preset)")
	cmd.Flags().Int64Var(&opts.seed, "seed", time.Now().UnixNano(), "random seed for names and statuses")

	return cmd
}

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every employee and their attendance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !yes {
				fmt.Fprint(out, "This will delete all employees and attendance. Continue? (yes/no): ")
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if strings.TrimSpace(answer) != "yes" {
					fmt.Fprintln(out, "Cancelled.")
					return nil
				}
			}

			return withDB(cmd.Context(), rootOpts, func(db *sql.DB) error {
				ds := seeder.NewDataSeeder(repository.NewEmployeeRepository(db), repository.NewAttendanceRepository(db), 0)
				deleted, err := ds.ClearData(cmd.Context())
				if err != nil {
					return fmt.Errorf("clear failed: %w", err)
				}
				fmt.Fprintf(out, "Deleted %d employees\n", deleted)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
