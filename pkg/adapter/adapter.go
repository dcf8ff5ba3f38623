// Package adapter provides the execution layer: database adapter interfaces,
// placeholder rebinding and schema migration for rendered SQL.
//
// This package contains the public contract that all database adapters must implement.
// Concrete adapter implementations are in pkg/adapters/ subdirectories.
package adapter

import (
	"context"
	"database/sql"

	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/leapstack-labs/sqlrender/pkg/dialect"
)

// Config is an alias for core.AdapterConfig.
type Config = core.AdapterConfig

// ColumnInfo describes a column as reported by the database.
type ColumnInfo struct {
	Name     string
	Type     string
	Nullable bool
	Position int
}

// Metadata describes a table as reported by the database.
type Metadata struct {
	Schema   string
	Name     string
	Columns  []ColumnInfo
	RowCount int64
}

// Adapter defines the interface that all database adapters must implement.
// It provides methods for connecting to databases, executing SQL, and
// retrieving metadata.
type Adapter interface {
	// Connect establishes a connection to the database using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the database connection and releases resources.
	Close() error

	// Exec executes a SQL statement that doesn't return rows (e.g., INSERT, UPDATE, CREATE).
	// Placeholders in sql must already match the backend's style.
	Exec(ctx context.Context, sql string, args ...any) error

	// Query executes a SQL statement that returns rows.
	Query(ctx context.Context, sql string, args ...any) (*sql.Rows, error)

	// GetTableMetadata retrieves metadata for a specified table.
	GetTableMetadata(ctx context.Context, table string) (*Metadata, error)

	// LoadCSV loads data from a CSV file into a table.
	// The table is recreated with one text column per CSV header.
	LoadCSV(ctx context.Context, tableName string, filePath string) error

	// Conn returns the underlying connection pool, nil before Connect.
	Conn() *sql.DB

	// Dialect returns the SQL dialect used to render statements for this adapter.
	Dialect() *dialect.Dialect
}
