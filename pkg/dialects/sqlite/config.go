package sqlite

import "github.com/leapstack-labs/sqlrender/pkg/core"

// Keywords are the SQLite additions to the ANSI keywords.
var Keywords = map[core.Keyword]string{
	core.WithoutRowID: "WITHOUT ROWID",
	core.Strict:       "STRICT",
}

// Clauses are the SQLite clause overrides.
var Clauses = map[core.Clause]string{
	core.Returning: "RETURNING %s",
	core.Regexp:    "%s REGEXP ?",
	core.NotRegexp: "%s NOT REGEXP ?",
}

// Statements are the SQLite statement templates.
var Statements = map[core.QueryKind]string{
	core.Insert:    "INSERT INTO {table} {fields} VALUES {values} {returning}",
	core.Update:    "UPDATE {table} SET {fields} {where} {returning}",
	core.Delete:    "DELETE FROM {table} {where} {returning}",
	core.DropTable: "DROP TABLE IF EXISTS {table}",
}

// TypeAliases maps canonical type tokens to SQLite spellings.
var TypeAliases = map[string]string{
	"int": "integer",
}
