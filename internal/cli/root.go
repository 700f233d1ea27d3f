package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/locvowork/hrms_lite/internal/bootstrap"
	"github.com/locvowork/hrms_lite/internal/config"
	"github.com/locvowork/hrms_lite/internal/logger"
)

// RootOptions holds global flags and the store connector shared by all commands.
type RootOptions struct {
	Verbose bool

	// OpenDB connects to the store. When nil the environment configuration is
	// loaded and bootstrap.OpenDatabase is used.
	OpenDB func(ctx context.Context) (*sql.DB, error)
}

// NewRootCommand creates the root command for the operator CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{})
}

func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hrmsctl",
		Short: "HRMS Lite operator tool",
		Long:  "Seed, clear and export the HRMS Lite employee roster and attendance ledger.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.OpenDB != nil {
				return nil
			}
			if err := config.LoadEnvConfig(); err != nil {
				return fmt.Errorf("failed to load env config: %w", err)
			}
			level := config.DefaultEnvConfig.LOG_LEVEL
			if opts.Verbose {
				level = "debug"
			}
			logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH, level)
			opts.OpenDB = bootstrap.OpenDatabase
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// withDB opens the store for the duration of fn.
func withDB(ctx context.Context, opts *RootOptions, fn func(db *sql.DB) error) error {
	db, err := opts.OpenDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}
