package adapter

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/leapstack-labs/sqlrender/pkg/dialect"
	"github.com/leapstack-labs/sqlrender/pkg/query"
)

// ErrNotConnected is returned by operations on an adapter that has no connection.
var ErrNotConnected = errors.New("database connection not established")

// BaseSQLAdapter provides common database/sql functionality for adapters.
// Embed this struct in concrete adapter implementations to get standard
// Close, Exec, and Query implementations.
type BaseSQLAdapter struct {
	DB     *sql.DB
	Cfg    Config
	Logger *slog.Logger
}

// Open opens a database/sql connection and verifies it with a ping.
func (b *BaseSQLAdapter) Open(ctx context.Context, driver, dsn string, cfg Config) error {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open %s connection: %w", driver, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping %s: %w", driver, err)
	}

	b.DB = db
	b.Cfg = cfg
	return nil
}

// Close closes the database connection.
func (b *BaseSQLAdapter) Close() error {
	if b.DB != nil {
		b.logger().Debug("closing database connection")
		return b.DB.Close()
	}
	return nil
}

// Exec executes a SQL statement that doesn't return rows.
func (b *BaseSQLAdapter) Exec(ctx context.Context, sqlStr string, args ...any) error {
	if b.DB == nil {
		return ErrNotConnected
	}
	b.logger().Debug("executing statement", slog.String("sql", sqlStr), slog.Int("params", len(args)))
	_, err := b.DB.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("failed to execute SQL: %w", err)
	}
	return nil
}

// Query executes a SQL statement that returns rows.
func (b *BaseSQLAdapter) Query(ctx context.Context, sqlStr string, args ...any) (*sql.Rows, error) {
	if b.DB == nil {
		return nil, ErrNotConnected
	}
	b.logger().Debug("executing query", slog.String("sql", sqlStr), slog.Int("params", len(args)))
	//nolint:rowserrcheck // rows.Err() must be checked by caller after iteration completes
	rows, err := b.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return rows, nil
}

// Conn returns the underlying connection pool.
func (b *BaseSQLAdapter) Conn() *sql.DB {
	return b.DB
}

// IsConnected returns true if the database connection is established.
func (b *BaseSQLAdapter) IsConnected() bool {
	return b.DB != nil
}

func (b *BaseSQLAdapter) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return b.Logger
}

// ParseQualifiedName splits a table reference into schema and name.
// Uses defaultSchema if not specified.
func ParseQualifiedName(table, defaultSchema string) (schema, name string) {
	if parts := strings.Split(table, "."); len(parts) == 2 {
		return parts[0], parts[1]
	}
	return defaultSchema, table
}

// GetTableMetadataCommon provides a shared implementation of GetTableMetadata.
// The information_schema query is rendered through d, so placeholders and
// quoting follow the backend.
func (b *BaseSQLAdapter) GetTableMetadataCommon(ctx context.Context, table, defaultSchema string, d *dialect.Dialect) (*Metadata, error) {
	if b.DB == nil {
		return nil, ErrNotConnected
	}

	schema, tableName := ParseQualifiedName(table, defaultSchema)

	q := query.Select("information_schema.columns", "column_name", "data_type", "is_nullable", "ordinal_position").
		Where(query.Eq("table_schema", schema), query.Eq("table_name", tableName)).
		OrderBy("ordinal_position", core.Asc)
	sqlStr, params, err := Render(d, q)
	if err != nil {
		return nil, err
	}

	rows, err := b.DB.QueryContext(ctx, sqlStr, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to query column metadata: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var columns []ColumnInfo
	for rows.Next() {
		var col ColumnInfo
		var nullable string
		if err := rows.Scan(&col.Name, &col.Type, &nullable, &col.Position); err != nil {
			return nil, fmt.Errorf("failed to scan column metadata: %w", err)
		}
		col.Nullable = nullable == "YES"
		columns = append(columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating column metadata: %w", err)
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s not found", table)
	}

	return &Metadata{
		Schema:   schema,
		Name:     tableName,
		Columns:  columns,
		RowCount: b.countRows(ctx, schema+"."+tableName, d),
	}, nil
}

// countRows returns the row count of table, or 0 when it cannot be read.
func (b *BaseSQLAdapter) countRows(ctx context.Context, table string, d *dialect.Dialect) int64 {
	sqlStr, _, err := d.Render(query.Select(table).FieldExpr(query.Raw("COUNT(*)"), ""))
	if err != nil {
		return 0
	}
	var rowCount int64
	if err := b.DB.QueryRowContext(ctx, sqlStr).Scan(&rowCount); err != nil {
		// Non-fatal error, just report 0
		return 0
	}
	return rowCount
}

// LoadCSVCommon recreates tableName with one nullable text column per CSV
// header and inserts every record, all through statements rendered by d.
func (b *BaseSQLAdapter) LoadCSVCommon(ctx context.Context, tableName, filePath string, d *dialect.Dialect) error {
	if b.DB == nil {
		return ErrNotConnected
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	file, err := os.Open(absPath) //nolint:gosec // absPath is derived from user-provided filePath, which is expected
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns, err := b.CreateTextTable(ctx, tableName, headers, d)
	if err != nil {
		return err
	}

	tx, err := b.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	loaded := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read CSV record: %w", err)
		}

		q := query.Insert(tableName)
		for i, col := range columns {
			if i < len(record) {
				q.Set(col, record[i])
			}
		}
		sqlStr, params, err := Render(d, q)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, sqlStr, params...); err != nil {
			return fmt.Errorf("failed to insert CSV record: %w", err)
		}
		loaded++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit CSV load: %w", err)
	}
	b.logger().Debug("loaded csv", slog.String("table", tableName), slog.Int("rows", loaded))
	return nil
}

// CreateTextTable drops and recreates tableName with one nullable text
// column per header. It returns the column names as created.
func (b *BaseSQLAdapter) CreateTextTable(ctx context.Context, tableName string, headers []string, d *dialect.Dialect) ([]string, error) {
	schema := core.NewSchema(tableName)
	for _, h := range headers {
		schema.AddColumn(SanitizeIdentifier(h), core.ColumnOptions{Type: "text", Nullable: core.Bool(true)})
	}

	for _, q := range []*query.Query{query.DropTable(tableName), query.CreateTable(schema)} {
		sqlStr, _, err := Render(d, q)
		if err != nil {
			return nil, fmt.Errorf("failed to render table DDL: %w", err)
		}
		if err := b.Exec(ctx, sqlStr); err != nil {
			return nil, fmt.Errorf("failed to create table: %w", err)
		}
	}
	return schema.ColumnNames(), nil
}

// SanitizeIdentifier makes a CSV header usable as a column name.
func SanitizeIdentifier(name string) string {
	safe := strings.TrimSpace(name)
	safe = strings.ReplaceAll(safe, " ", "_")
	safe = strings.ReplaceAll(safe, "-", "_")
	return safe
}
