package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/sqlrender/internal/cli/output"
	"github.com/leapstack-labs/sqlrender/pkg/dialect"
)

// DialectInfo describes a registered dialect.
type DialectInfo struct {
	Name        string   `json:"name"`
	Placeholder string   `json:"placeholder"`
	Quote       string   `json:"quote"`
	Statements  []string `json:"statements"`
}

// StatementInfo is one statement template of a dialect.
type StatementInfo struct {
	Kind     string `json:"kind"`
	Template string `json:"template"`
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects [name]",
		Short: "List registered dialects and their capabilities",
		Long: `List every registered dialect with its placeholder style, identifier
quoting and supported statements.

Given a dialect name, show that dialect's statement templates instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			if len(args) == 1 {
				return showDialect(cc.Renderer, args[0])
			}
			return listDialects(cc.Renderer)
		},
	}
}

func describeDialect(d *dialect.Dialect) DialectInfo {
	kinds := d.SupportedStatements()
	stmts := make([]string, len(kinds))
	for i, k := range kinds {
		stmts[i] = k.String()
	}
	return DialectInfo{
		Name:        d.Name,
		Placeholder: d.FormatPlaceholder(1),
		Quote:       d.QuoteIdentifier("name"),
		Statements:  stmts,
	}
}

func listDialects(r *output.Renderer) error {
	names := dialect.List()
	infos := make([]DialectInfo, 0, len(names))
	for _, name := range names {
		d, err := dialect.Lookup(name)
		if err != nil {
			return err
		}
		infos = append(infos, describeDialect(d))
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(infos)
	}

	titleCaser := cases.Title(language.English)
	rows := make([][]any, len(infos))
	for i, info := range infos {
		rows[i] = []any{titleCaser.String(info.Name), info.Placeholder, info.Quote, strings.Join(info.Statements, ", ")}
	}

	r.Header(1, fmt.Sprintf("Dialects (%d registered)", len(infos)))
	r.Table([]string{"Dialect", "Placeholder", "Quoting", "Statements"}, rows)
	return nil
}

func showDialect(r *output.Renderer, name string) error {
	d, err := dialect.Lookup(name)
	if err != nil {
		return err
	}

	var stmts []StatementInfo
	for _, kind := range d.SupportedStatements() {
		stmt, err := d.Statement(kind)
		if err != nil {
			return err
		}
		stmts = append(stmts, StatementInfo{Kind: kind.String(), Template: stmt.String()})
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(stmts)
	}

	rows := make([][]any, len(stmts))
	for i, s := range stmts {
		rows[i] = []any{s.Kind, strings.ReplaceAll(s.Template, "\n", " ")}
	}

	r.Header(1, cases.Title(language.English).String(d.Name))
	r.Table([]string{"Statement", "Template"}, rows)
	return nil
}
