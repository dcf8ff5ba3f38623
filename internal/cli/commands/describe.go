package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlrender/internal/cli/output"
	"github.com/leapstack-labs/sqlrender/pkg/adapter"
)

// TableOutput is the JSON form of described table metadata.
type TableOutput struct {
	Schema   string       `json:"schema"`
	Name     string       `json:"name"`
	RowCount int64        `json:"row_count"`
	Columns  []ColumnMeta `json:"columns"`
}

// ColumnMeta is one described column.
type ColumnMeta struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <table>",
		Short: "Show a table's columns as reported by the target database",
		Long: `Show the columns and row count of a table on the configured target.
Qualify the table with a schema (e.g. analytics.events) to look outside the
backend's default schema.`,
		Example: `  sqlrender describe users
  sqlrender describe analytics.events -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, args[0])
		},
	}
}

func runDescribe(cmd *cobra.Command, table string) error {
	cc := NewCommandContext(cmd)
	ctx := cmd.Context()
	r := cc.Renderer

	a, err := cc.OpenTarget(ctx, cc.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	meta, err := a.GetTableMetadata(ctx, table)
	if err != nil {
		return fmt.Errorf("failed to get table metadata: %w", err)
	}
	out := tableOutput(meta)

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}

	rows := make([][]any, len(out.Columns))
	for i, col := range out.Columns {
		null := "NO"
		if col.Nullable {
			null = "YES"
		}
		rows[i] = []any{col.Name, col.Type, null}
	}

	r.Header(1, out.Schema+"."+out.Name)
	r.Table([]string{"Column", "Type", "Nullable"}, rows)
	r.Printf("(%d rows)\n", out.RowCount)
	return nil
}

func tableOutput(meta *adapter.Metadata) TableOutput {
	out := TableOutput{
		Schema:   meta.Schema,
		Name:     meta.Name,
		RowCount: meta.RowCount,
		Columns:  make([]ColumnMeta, len(meta.Columns)),
	}
	for i, col := range meta.Columns {
		out.Columns[i] = ColumnMeta{Name: col.Name, Type: col.Type, Nullable: col.Nullable}
	}
	return out
}
