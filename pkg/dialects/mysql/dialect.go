// Package mysql provides the MySQL SQL dialect definition.
package mysql

import (
	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/leapstack-labs/sqlrender/pkg/dialect"
	"github.com/leapstack-labs/sqlrender/pkg/dialects/ansi"
)

func init() {
	dialect.Register(MySQL)
}

// MySQL is the MySQL dialect.
var MySQL = dialect.NewDialect("mysql").
	Apply(ansi.Base).
	Identifiers("`", "`", "``").
	PlaceholderStyle(core.PlaceholderQuestion).
	Keywords(Keywords).
	Clauses(Clauses).
	RemoveClauses(core.JoinOuter).
	Statements(Statements).
	TypeAliases(TypeAliases).
	BooleanLiterals("1", "0").
	Build()
