// Package cli provides the command-line interface for sqlrender.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlrender/internal/cli/commands"
	"github.com/leapstack-labs/sqlrender/internal/config"

	// Register dialects and adapters
	_ "github.com/leapstack-labs/sqlrender/pkg/adapters/duckdb"
	_ "github.com/leapstack-labs/sqlrender/pkg/adapters/mssql"
	_ "github.com/leapstack-labs/sqlrender/pkg/adapters/mysql"
	_ "github.com/leapstack-labs/sqlrender/pkg/adapters/postgres"
	_ "github.com/leapstack-labs/sqlrender/pkg/adapters/sqlite"
	_ "github.com/leapstack-labs/sqlrender/pkg/dialects/ansi"
	_ "github.com/leapstack-labs/sqlrender/pkg/dialects/duckdb"
	_ "github.com/leapstack-labs/sqlrender/pkg/dialects/mssql"
	_ "github.com/leapstack-labs/sqlrender/pkg/dialects/mysql"
	_ "github.com/leapstack-labs/sqlrender/pkg/dialects/postgres"
	_ "github.com/leapstack-labs/sqlrender/pkg/dialects/sqlite"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "sqlrender",
		Short: "sqlrender - SQL dialect translation",
		Long: `sqlrender renders backend-agnostic query and schema documents into SQL for
Postgres, MySQL, SQLite, SQL Server and DuckDB, and can apply or execute the
result against a configured target database.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			res, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			if err := res.Validate(); err != nil {
				return err
			}

			level := slog.LevelWarn
			if res.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = config.WithConfig(ctx, res.Config)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			if res.File != "" {
				logger.Debug("using config file", "path", res.File)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: sqlrender.yaml, searched upward)")
	flags.StringP("dialect", "d", "", "SQL dialect to render for (default: target type, else ansi)")
	flags.StringP("target", "t", "", "Target database type (duckdb, postgres, sqlite, mysql, mssql)")
	flags.StringP("output", "o", "", "Output format (auto|text|markdown|json)")
	flags.BoolP("verbose", "v", false, "Verbose output")
	flags.IntP("workers", "w", 0, "Documents rendered in parallel")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"ansi", "duckdb", "mssql", "mysql", "postgres", "sqlite"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(commands.NewDDLCommand())
	rootCmd.AddCommand(commands.NewDialectsCommand())
	rootCmd.AddCommand(commands.NewApplyCommand())
	rootCmd.AddCommand(commands.NewExecCommand())
	rootCmd.AddCommand(commands.NewSeedCommand())
	rootCmd.AddCommand(commands.NewDescribeCommand())

	return rootCmd
}

// Execute runs the root command, cancelling its context on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
