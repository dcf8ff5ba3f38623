package mssql

import "github.com/leapstack-labs/sqlrender/pkg/core"

// Keywords are the SQL Server additions to the ANSI keywords.
var Keywords = map[core.Keyword]string{
	core.AutoIncrement: "IDENTITY(1,1)",
}

// Clauses are the SQL Server clause overrides.
var Clauses = map[core.Clause]string{
	core.NotEquals:   "%s <> ?",
	core.Limit:       "OFFSET 0 ROWS FETCH NEXT %s ROWS ONLY",
	core.LimitOffset: "OFFSET %[2]s ROWS FETCH NEXT %[1]s ROWS ONLY",
}

// Statements are the SQL Server statement templates.
var Statements = map[core.QueryKind]string{
	core.CreateTable: "CREATE TABLE {table} (\n{columns}{keys}\n)",
	core.DropIndex:   "DROP INDEX IF EXISTS {index} ON {table}",
}

// TypeAliases maps canonical type tokens to SQL Server spellings.
var TypeAliases = map[string]string{
	"boolean":   "bit",
	"datetime":  "datetime2",
	"timestamp": "datetime2",
	"double":    "float",
	"text":      "nvarchar(max)",
	"json":      "nvarchar(max)",
	"blob":      "varbinary(max)",
	"uuid":      "uniqueidentifier",
	"varchar":   "nvarchar",
}
