package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlrender/internal/cli/output"
)

// SeedInfo is the JSON form of one loaded CSV file.
type SeedInfo struct {
	Table string `json:"table"`
	File  string `json:"file"`
	Rows  int64  `json:"rows"`
}

// NewSeedCommand creates the seed command.
func NewSeedCommand() *cobra.Command {
	var table string

	cmd := &cobra.Command{
		Use:   "seed <file.csv>...",
		Short: "Load CSV files into the target database",
		Long: `Load each CSV file into a table named after the file. The table is
recreated with one text column per CSV header.

Seeds are meant for reference data like country codes, status enums or small
lookup tables.`,
		Example: `  # Load two lookup tables
  sqlrender seed data/countries.csv data/statuses.csv

  # Load a file into an explicitly named table
  sqlrender seed exports/2024.csv --table sales`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if table != "" && len(args) > 1 {
				return fmt.Errorf("--table needs exactly one file, got %d", len(args))
			}
			return runSeed(cmd, args, table)
		},
	}

	cmd.Flags().StringVar(&table, "table", "", "Target table (default: file name without .csv)")
	return cmd
}

func seedTableName(file string) string {
	return strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
}

func runSeed(cmd *cobra.Command, files []string, table string) error {
	cc := NewCommandContext(cmd)
	ctx := cmd.Context()
	r := cc.Renderer

	a, err := cc.OpenTarget(ctx, cc.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	seeds := make([]SeedInfo, 0, len(files))
	for _, file := range files {
		name := table
		if name == "" {
			name = seedTableName(file)
		}
		cc.Logger.Debug("loading seed", "file", file, "table", name)
		if err := a.LoadCSV(ctx, name, file); err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}

		var rows int64 = -1
		if meta, err := a.GetTableMetadata(ctx, name); err == nil {
			rows = meta.RowCount
		}
		seeds = append(seeds, SeedInfo{Table: name, File: file, Rows: rows})
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(seeds)
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Seeds Loaded"))
		r.Println("")
		for _, s := range seeds {
			r.Println(output.FormatKeyValue("Table", s.Table))
			r.Println(output.FormatKeyValue("File", s.File))
			r.Println(output.FormatKeyValue("Rows", fmt.Sprint(s.Rows)))
			r.Println("")
		}
	default:
		for _, s := range seeds {
			r.Success(fmt.Sprintf("%s (%d rows) from %s", s.Table, s.Rows, s.File))
		}
	}
	return nil
}
