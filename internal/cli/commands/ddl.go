package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/sqlrender/internal/cli/output"
	"github.com/leapstack-labs/sqlrender/internal/loader"
	"github.com/leapstack-labs/sqlrender/pkg/adapter"
	"github.com/leapstack-labs/sqlrender/pkg/dialect"
	"github.com/leapstack-labs/sqlrender/pkg/query"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 100 * time.Millisecond

// DDLResult is the rendered CREATE TABLE of one schema document.
type DDLResult struct {
	File  string `json:"file"`
	Table string `json:"table"`
	SQL   string `json:"sql"`
}

// NewDDLCommand creates the ddl command.
func NewDDLCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "ddl <schema.yaml>...",
		Short: "Render CREATE TABLE statements from schema documents",
		Long: `Render a CREATE TABLE statement for each schema document.

Documents are rendered in parallel (see --workers) and printed in argument
order. With --watch, a document is rendered again whenever it changes.`,
		Example: `  # Render two tables for Postgres
  sqlrender ddl schemas/teams.yaml schemas/users.yaml --dialect postgres

  # Re-render on every save
  sqlrender ddl schemas/*.yaml --watch`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDDL(cmd, args, watch)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Re-render documents when they change")
	return cmd
}

func runDDL(cmd *cobra.Command, files []string, watch bool) error {
	cc := NewCommandContext(cmd)
	ctx := cmd.Context()

	d, err := cc.Dialect()
	if err != nil {
		return err
	}

	results, err := renderSchemas(ctx, d, files, cc.Cfg.Workers)
	if err != nil {
		return err
	}
	if err := printDDL(cc.Renderer, results); err != nil {
		return err
	}

	if !watch {
		return nil
	}
	return watchSchemas(ctx, cc, d, files)
}

// renderSchemas renders every schema file with at most workers in flight.
// Results keep the order of files; the first failure cancels the rest.
func renderSchemas(ctx context.Context, d *dialect.Dialect, files []string, workers int) ([]DDLResult, error) {
	results := make([]DDLResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := renderSchema(d, file)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func renderSchema(d *dialect.Dialect, file string) (DDLResult, error) {
	s, err := loader.LoadSchema(file)
	if err != nil {
		return DDLResult{}, err
	}
	sql, _, err := adapter.Render(d, query.CreateTable(s))
	if err != nil {
		return DDLResult{}, fmt.Errorf("failed to render %s: %w", file, err)
	}
	return DDLResult{File: file, Table: s.Name, SQL: sql}, nil
}

func printDDL(r *output.Renderer, results []DDLResult) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(results)
	case output.ModeMarkdown:
		for _, res := range results {
			r.Header(2, res.Table)
			r.Println(output.FormatKeyValue("File", res.File))
			r.Println("")
			r.SQL(res.SQL)
			r.Println("")
		}
	default:
		for i, res := range results {
			if i > 0 {
				r.Println("")
			}
			r.Printf("-- %s\n", res.File)
			r.SQL(res.SQL)
		}
	}
	return nil
}

// watchSchemas re-renders changed schema files until ctx is done.
func watchSchemas(ctx context.Context, cc *CommandContext, d *dialect.Dialect, files []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// File watches are lost when an editor replaces the file, so directories are watched.
	watched := make(map[string]string, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		watched[abs] = f
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	cc.Renderer.Muted(fmt.Sprintf("Watching %d file(s) for changes. Press Ctrl+C to stop.", len(files)))

	pending := make(map[string]bool)
	var debounce <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Only handle write/create events for watched files
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			file, ok := watched[filepath.Clean(event.Name)]
			if !ok {
				continue
			}
			pending[file] = true
			debounce = time.After(watchDebounce)

		case <-debounce:
			debounce = nil
			var changed []string
			for _, f := range files {
				if pending[f] {
					changed = append(changed, f)
				}
			}
			clear(pending)

			for _, f := range changed {
				cc.Logger.Debug("change detected", "file", f)
				res, err := renderSchema(d, f)
				if err != nil {
					cc.Renderer.Error(err.Error())
					continue
				}
				if err := printDDL(cc.Renderer, []DDLResult{res}); err != nil {
					return err
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cc.Logger.Warn("watcher error", "error", err)
		}
	}
}
