// Package sqlite provides a SQLite database adapter for sqlrender, backed
// by the pure Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/sqlrender/pkg/adapter"
	"github.com/leapstack-labs/sqlrender/pkg/dialect"
	sqlitedialect "github.com/leapstack-labs/sqlrender/pkg/dialects/sqlite"
	"github.com/leapstack-labs/sqlrender/pkg/query"

	_ "modernc.org/sqlite" // sqlite driver
)

// Adapter implements the adapter.Adapter interface for SQLite.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new SQLite adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger},
	}
}

// Dialect returns the SQLite dialect.
func (a *Adapter) Dialect() *dialect.Dialect {
	return sqlitedialect.SQLite
}

// Connect opens the database file at cfg.Path, or an in-memory database
// when the path is empty or ":memory:".
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	a.Logger.Debug("connecting to sqlite", slog.String("path", path))
	if err := a.Open(ctx, "sqlite", path, cfg); err != nil {
		return err
	}

	// Every connection to :memory: opens its own database
	if path == ":memory:" {
		a.DB.SetMaxOpenConns(1)
	}

	if err := a.Exec(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = a.Close()
		a.DB = nil
		return err
	}
	return nil
}

// GetTableMetadata retrieves metadata for a specified table from
// pragma_table_info. SQLite reports only the main schema.
func (a *Adapter) GetTableMetadata(ctx context.Context, table string) (*adapter.Metadata, error) {
	if a.DB == nil {
		return nil, adapter.ErrNotConnected
	}

	schema, tableName := adapter.ParseQualifiedName(table, "main")

	rows, err := a.DB.QueryContext(ctx,
		`SELECT name, type, "notnull", pk, cid FROM pragma_table_info(?, ?) ORDER BY cid`,
		tableName, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to query column metadata: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var columns []adapter.ColumnInfo
	for rows.Next() {
		var col adapter.ColumnInfo
		var notNull, pk int
		if err := rows.Scan(&col.Name, &col.Type, &notNull, &pk, &col.Position); err != nil {
			return nil, fmt.Errorf("failed to scan column metadata: %w", err)
		}
		// Declared types keep the case of the DDL; report them lowercase
		// like the other adapters.
		col.Type = strings.ToLower(col.Type)
		col.Nullable = notNull == 0 && pk == 0
		col.Position++
		columns = append(columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating column metadata: %w", err)
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s not found", table)
	}

	return &adapter.Metadata{
		Schema:   schema,
		Name:     tableName,
		Columns:  columns,
		RowCount: a.rowCount(ctx, schema, tableName),
	}, nil
}

// rowCount counts the rows of a table. Failures are logged at debug level
// and count as zero.
func (a *Adapter) rowCount(ctx context.Context, schema, table string) int64 {
	countSQL, _, err := adapter.Render(a.Dialect(), query.Select(schema+"."+table).FieldExpr(query.Raw("COUNT(*)"), ""))
	if err != nil {
		a.Logger.Debug("failed to render row count", slog.String("table", table), slog.Any("error", err))
		return 0
	}

	var n int64
	if err := a.DB.QueryRowContext(ctx, countSQL).Scan(&n); err != nil {
		a.Logger.Debug("failed to count rows", slog.String("table", table), slog.Any("error", err))
		return 0
	}
	return n
}

// LoadCSV loads data from a CSV file into a table of text columns.
func (a *Adapter) LoadCSV(ctx context.Context, tableName string, filePath string) error {
	return a.LoadCSVCommon(ctx, tableName, filePath, a.Dialect())
}

// Ensure Adapter implements adapter.Adapter interface
var _ adapter.Adapter = (*Adapter)(nil)
