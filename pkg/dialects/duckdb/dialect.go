// Package duckdb provides the DuckDB SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package duckdb

import (
	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/leapstack-labs/sqlrender/pkg/dialect"
	"github.com/leapstack-labs/sqlrender/pkg/dialects/ansi"
)

func init() {
	dialect.Register(DuckDB)
}

// DuckDB is the DuckDB dialect.
var DuckDB = dialect.NewDialect("duckdb").
	Apply(ansi.Base).
	Identifiers(`"`, `"`, `""`).
	PlaceholderStyle(core.PlaceholderQuestion).
	RemoveKeywords(core.ForUpdateLock).
	Clauses(Clauses).
	Statements(Statements).
	TypeAliases(TypeAliases).
	Build()
