// Package postgres provides the PostgreSQL SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package postgres

import (
	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/leapstack-labs/sqlrender/pkg/dialect"
	"github.com/leapstack-labs/sqlrender/pkg/dialects/ansi"
)

func init() {
	dialect.Register(Postgres)
}

// Postgres is the PostgreSQL dialect.
var Postgres = dialect.NewDialect("postgres").
	Apply(ansi.Base).
	Identifiers(`"`, `"`, `""`).
	PlaceholderStyle(core.PlaceholderDollar).
	Keywords(Keywords).
	Clauses(Clauses).
	Statements(Statements).
	TypeAliases(TypeAliases).
	Build()
