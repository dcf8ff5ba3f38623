package duckdb

import "github.com/leapstack-labs/sqlrender/pkg/core"

// Clauses are the DuckDB clause overrides.
var Clauses = map[core.Clause]string{
	core.DistinctOn: "DISTINCT ON (%s)",
	core.Returning:  "RETURNING %s",
	core.Regexp:     "regexp_matches(%s, ?)",
	core.NotRegexp:  "NOT regexp_matches(%s, ?)",
}

// Statements are the DuckDB statement templates.
var Statements = map[core.QueryKind]string{
	core.Insert:      "INSERT INTO {table} {fields} VALUES {values} {returning}",
	core.Update:      "UPDATE {table} SET {fields} {where} {returning}",
	core.Delete:      "DELETE FROM {table} {where} {returning}",
	core.CreateTable: "CREATE {temporary} TABLE IF NOT EXISTS {table} (\n{columns}{keys}\n)",
}

// TypeAliases maps canonical type tokens to DuckDB spellings.
var TypeAliases = map[string]string{
	"int":      "integer",
	"datetime": "timestamp",
}
