// Package sqlite provides the SQLite SQL dialect definition.
//
// SQLite has no TRUNCATE statement and no row locking. Both are removed
// from the baseline, so requesting them fails instead of rendering SQL the
// engine would reject.
package sqlite

import (
	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/leapstack-labs/sqlrender/pkg/dialect"
	"github.com/leapstack-labs/sqlrender/pkg/dialects/ansi"
)

func init() {
	dialect.Register(SQLite)
}

// SQLite is the SQLite dialect.
var SQLite = dialect.NewDialect("sqlite").
	Apply(ansi.Base).
	Identifiers(`"`, `"`, `""`).
	PlaceholderStyle(core.PlaceholderQuestion).
	Keywords(Keywords).
	RemoveKeywords(core.ForUpdateLock).
	Clauses(Clauses).
	Statements(Statements).
	RemoveStatements(core.Truncate).
	TypeAliases(TypeAliases).
	BooleanLiterals("1", "0").
	TableOptionSeparator(", ").
	Build()
