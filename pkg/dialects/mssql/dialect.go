// Package mssql provides the Microsoft SQL Server dialect definition.
//
// Row limits render as OFFSET ... FETCH, which SQL Server only accepts
// after an ORDER BY.
package mssql

import (
	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/leapstack-labs/sqlrender/pkg/dialect"
	"github.com/leapstack-labs/sqlrender/pkg/dialects/ansi"
)

func init() {
	dialect.Register(MSSQL)
}

// MSSQL is the SQL Server dialect.
var MSSQL = dialect.NewDialect("mssql").
	Apply(ansi.Base).
	Identifiers("[", "]", "]]").
	PlaceholderStyle(core.PlaceholderAtP).
	Keywords(Keywords).
	RemoveKeywords(core.ForUpdateLock).
	Clauses(Clauses).
	RemoveClauses(core.Regexp, core.NotRegexp).
	Statements(Statements).
	TypeAliases(TypeAliases).
	BooleanLiterals("1", "0").
	Build()
