// Package commands implements the sqlrender subcommands.
package commands

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlrender/internal/cli/output"
	"github.com/leapstack-labs/sqlrender/internal/config"
	"github.com/leapstack-labs/sqlrender/pkg/adapter"
	"github.com/leapstack-labs/sqlrender/pkg/dialect"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds a CommandContext from the config and logger the
// root command stored in the command context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.FromContext(ctx)
	mode := output.Mode(cfg.OutputFormat)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(ctx),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
	}
}

// Dialect resolves the configured dialect.
func (c *CommandContext) Dialect() (*dialect.Dialect, error) {
	return c.Cfg.ResolveDialect()
}

// OpenTarget creates and connects the adapter for the configured target.
// The caller must Close the returned adapter.
func (c *CommandContext) OpenTarget(ctx context.Context, logger *slog.Logger) (adapter.Adapter, error) {
	if c.Cfg.Target == nil {
		return nil, fmt.Errorf("no target configured (set target in sqlrender.yaml or pass --target)")
	}
	if err := c.Cfg.Target.Validate(); err != nil {
		return nil, err
	}

	cfg := c.Cfg.Target.ToAdapterConfig()
	a, err := adapter.NewAdapter(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := a.Connect(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Type, err)
	}
	return a, nil
}

// collectRows drains rows into display values.
func collectRows(rows *sql.Rows) ([]string, [][]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var results [][]any
	for rows.Next() {
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, nil, err
		}

		// Convert []byte to string for readability
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		results = append(results, values)
	}
	return cols, results, rows.Err()
}
