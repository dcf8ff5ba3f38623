package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlrender/internal/cli/output"
	"github.com/leapstack-labs/sqlrender/internal/loader"
	"github.com/leapstack-labs/sqlrender/pkg/adapter"
	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/leapstack-labs/sqlrender/pkg/query"
)

// ExecOutput is the JSON form of an executed query.
type ExecOutput struct {
	RunID   string           `json:"run_id"`
	Kind    string           `json:"kind"`
	Columns []string         `json:"columns,omitempty"`
	Rows    []map[string]any `json:"rows,omitempty"`
}

// NewExecCommand creates the exec command.
func NewExecCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <query.yaml>",
		Short: "Execute a query document against the target database",
		Long: `Render a YAML query document with the target's dialect and execute it.

Selects, and writes with a returning list, print their rows as a table.
Each invocation gets a run id that tags its log lines.`,
		Example: `  # Run a select against the configured target
  sqlrender exec queries/active_users.yaml

  # Emit rows as JSON
  sqlrender exec queries/active_users.yaml -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(cmd, args[0])
		},
	}
}

func returnsRows(q *query.Query) bool {
	return q.Kind() == core.Select || len(q.GetReturning()) > 0
}

func runExec(cmd *cobra.Command, path string) error {
	cc := NewCommandContext(cmd)
	ctx := cmd.Context()
	r := cc.Renderer

	runID := uuid.New().String()
	logger := cc.Logger.With("run_id", runID)

	q, err := loader.LoadQuery(path)
	if err != nil {
		return err
	}

	a, err := cc.OpenTarget(ctx, logger)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	logger.Info("executing query", "file", path, "kind", q.Kind(), "target", a.Dialect().Name)

	if !returnsRows(q) {
		if err := adapter.ExecQuery(ctx, a, q); err != nil {
			return err
		}
		if r.EffectiveMode() == output.ModeJSON {
			return r.JSON(ExecOutput{RunID: runID, Kind: q.Kind().String()})
		}
		r.Success(fmt.Sprintf("%s on %s executed", q.Kind(), q.Table()))
		return nil
	}

	rows, err := adapter.QueryRows(ctx, a, q)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	cols, results, err := collectRows(rows)
	if err != nil {
		return fmt.Errorf("failed to read rows: %w", err)
	}
	logger.Debug("query returned rows", "rows", len(results))

	if r.EffectiveMode() == output.ModeJSON {
		out := ExecOutput{RunID: runID, Kind: q.Kind().String(), Columns: cols, Rows: make([]map[string]any, len(results))}
		for i, row := range results {
			m := make(map[string]any, len(cols))
			for j, col := range cols {
				m[col] = row[j]
			}
			out.Rows[i] = m
		}
		return r.JSON(out)
	}

	if len(results) == 0 {
		r.Println("(0 rows)")
		return nil
	}

	display := make([][]any, len(results))
	for i, row := range results {
		display[i] = make([]any, len(row))
		for j, v := range row {
			display[i][j] = output.FormatValue(v)
		}
	}
	r.Table(cols, display)
	r.Printf("(%d rows)\n", len(results))
	return nil
}
