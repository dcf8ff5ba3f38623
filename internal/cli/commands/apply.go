package commands

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlrender/internal/dag"
	"github.com/leapstack-labs/sqlrender/internal/loader"
	"github.com/leapstack-labs/sqlrender/pkg/adapter"
	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/leapstack-labs/sqlrender/pkg/query"
)

// NewApplyCommand creates the apply command.
func NewApplyCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply <schema.yaml>...",
		Short: "Create tables on the target database",
		Long: `Render each schema document and apply it to the configured target as a
versioned migration. Tables are created after the tables their foreign keys
reference; otherwise migration versions follow argument order, so keep the
order stable between runs. Already applied versions are skipped.

With --dry-run, print the migration files instead of applying them.`,
		Example: `  # Apply to the target in sqlrender.yaml
  sqlrender apply schemas/teams.yaml schemas/users.yaml

  # Apply to a local SQLite file
  SQLRENDER_TARGET__DATABASE=dev.db sqlrender apply schemas/*.yaml --target sqlite`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print migrations without applying them")
	return cmd
}

func runApply(cmd *cobra.Command, files []string, dryRun bool) error {
	cc := NewCommandContext(cmd)
	ctx := cmd.Context()

	migrations, err := buildMigrations(files)
	if err != nil {
		return err
	}

	if dryRun {
		d, err := cc.Dialect()
		if err != nil {
			return err
		}
		fsys, err := adapter.MigrationFS(d, migrations)
		if err != nil {
			return err
		}
		return printMigrations(cc, fsys)
	}

	a, err := cc.OpenTarget(ctx, cc.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	if err := adapter.Migrate(ctx, a, migrations); err != nil {
		return err
	}
	cc.Renderer.Success(fmt.Sprintf("Applied %d schema(s) to %s", len(migrations), cc.Cfg.Target.Type))
	return nil
}

// buildMigrations turns each schema document into one migration that
// creates its table and drops it on rollback.
func buildMigrations(files []string) ([]adapter.Migration, error) {
	schemas := make([]*core.Schema, 0, len(files))
	for _, file := range files {
		s, err := loader.LoadSchema(file)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}

	ordered, err := orderSchemas(schemas)
	if err != nil {
		return nil, err
	}

	migrations := make([]adapter.Migration, 0, len(ordered))
	for i, s := range ordered {
		migrations = append(migrations, adapter.Migration{
			Version: int64(i + 1),
			Name:    "create_" + strings.ReplaceAll(adapter.SanitizeIdentifier(s.Name), ".", "_"),
			Up:      []*query.Query{query.CreateTable(s)},
			Down:    []*query.Query{query.DropTable(s.Name)},
		})
	}
	return migrations, nil
}

// orderSchemas sorts schemas so referenced tables are created first.
// References to tables outside the set are assumed to exist already.
func orderSchemas(schemas []*core.Schema) ([]*core.Schema, error) {
	g := dag.NewGraph[*core.Schema]()
	for _, s := range schemas {
		if g.Has(s.Name) {
			return nil, fmt.Errorf("table %q is defined more than once", s.Name)
		}
		g.AddNode(s.Name, s)
	}

	for _, s := range schemas {
		for _, k := range s.Keys {
			if k.Type != core.KeyForeign || k.References == nil || !g.Has(k.References.Table) {
				continue
			}
			if err := g.AddEdge(k.References.Table, s.Name); err != nil {
				return nil, err
			}
		}
	}

	nodes, err := g.TopologicalSort()
	if err != nil {
		return nil, err
	}
	out := make([]*core.Schema, len(nodes))
	for i, n := range nodes {
		out[i] = n.Data
	}
	return out, nil
}

func printMigrations(cc *CommandContext, fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return err
	}
	for i, e := range entries {
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return err
		}
		if i > 0 {
			cc.Renderer.Println("")
		}
		cc.Renderer.Printf("-- %s\n%s", e.Name(), data)
	}
	return nil
}
