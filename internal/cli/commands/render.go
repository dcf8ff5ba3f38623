package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlrender/internal/cli/output"
	"github.com/leapstack-labs/sqlrender/internal/loader"
	"github.com/leapstack-labs/sqlrender/pkg/adapter"
)

// RenderOutput is the JSON form of a rendered query.
type RenderOutput struct {
	Dialect string `json:"dialect"`
	Kind    string `json:"kind"`
	SQL     string `json:"sql"`
	Params  []any  `json:"params"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <query.yaml>",
		Short: "Render a query document as SQL",
		Long: `Render a YAML query document into SQL for the configured dialect.

Placeholders use the dialect's native style ($1 for Postgres, @p1 for SQL
Server, ? elsewhere). Bound values are listed after the statement.`,
		Example: `  # Render for the dialect in sqlrender.yaml
  sqlrender render queries/active_users.yaml

  # Render for MySQL as JSON
  sqlrender render queries/active_users.yaml --dialect mysql -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0])
		},
	}
	return cmd
}

func runRender(cmd *cobra.Command, path string) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer

	d, err := cc.Dialect()
	if err != nil {
		return err
	}

	q, err := loader.LoadQuery(path)
	if err != nil {
		return err
	}

	sql, params, err := adapter.Render(d, q)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	cc.Logger.Debug("rendered query", "file", path, "dialect", d.Name, "params", len(params))

	switch r.EffectiveMode() {
	case output.ModeJSON:
		if params == nil {
			params = []any{}
		}
		return r.JSON(RenderOutput{Dialect: d.Name, Kind: q.Kind().String(), SQL: sql, Params: params})
	case output.ModeMarkdown:
		r.SQL(sql)
		if len(params) > 0 {
			r.Println("")
			r.Table([]string{"#", "Value"}, paramRows(params))
		}
	default:
		r.SQL(sql)
		for i, row := range paramRows(params) {
			r.Printf("-- %s: %v\n", d.FormatPlaceholder(i+1), row[1])
		}
	}
	return nil
}

func paramRows(params []any) [][]any {
	rows := make([][]any, len(params))
	for i, p := range params {
		rows[i] = []any{strconv.Itoa(i + 1), output.FormatValue(p)}
	}
	return rows
}
