package postgres

import "github.com/leapstack-labs/sqlrender/pkg/core"

// Keywords are the PostgreSQL additions to the ANSI keywords.
var Keywords = map[core.Keyword]string{
	core.Concurrently:     "CONCURRENTLY",
	core.ContinueIdentity: "CONTINUE IDENTITY",
	core.DeleteRows:       "DELETE ROWS",
	core.Drop:             "DROP",
	core.ForShareLock:     "FOR SHARE",
	core.ForUpdateLock:    "FOR UPDATE",
	core.Inherits:         "INHERITS",
	core.Global:           "GLOBAL",
	core.Local:            "LOCAL",
	core.MatchFull:        "MATCH FULL",
	core.MatchPartial:     "MATCH PARTIAL",
	core.MatchSimple:      "MATCH SIMPLE",
	core.OnCommit:         "ON COMMIT",
	core.Only:             "ONLY",
	core.PreserveRows:     "PRESERVE ROWS",
	core.RestartIdentity:  "RESTART IDENTITY",
	core.SetDefault:       "SET DEFAULT",
	core.Tablespace:       "TABLESPACE",
	core.Unique:           "UNIQUE",
	core.Unlogged:         "UNLOGGED",
	core.WithOids:         "WITH OIDS",
	core.WithoutOids:      "WITHOUT OIDS",
}

// Clauses are the PostgreSQL clause overrides.
var Clauses = map[core.Clause]string{
	core.DistinctOn:   "DISTINCT ON (%s)",
	core.JoinStraight: "INNER JOIN %s ON %s",
	core.NotRegexp:    "%s !~* ?",
	core.Returning:    "RETURNING %s",
	core.Regexp:       "%s ~* ?",
	core.RLike:        "%s ~* ?",
	core.UniqueKey:    "UNIQUE (%[2]s)",
}

// Statements are the PostgreSQL statement templates.
var Statements = map[core.QueryKind]string{
	core.Insert:      "INSERT INTO {table} {fields} VALUES {values} {returning}",
	core.Select:      "SELECT {distinct} {fields} FROM {table} {joins} {where} {groupBy} {having} {compounds} {orderBy} {limit} {lock}",
	core.Update:      "UPDATE {only} {table} SET {fields} {where} {returning}",
	core.Delete:      "DELETE FROM {only} {table} {joins} {where} {returning}",
	core.Truncate:    "TRUNCATE {only} {table} {identity} {action}",
	core.CreateTable: "CREATE {type} {temporary} {unlogged} TABLE IF NOT EXISTS {table} (\n{columns}{keys}\n) {options}",
	core.CreateIndex: "CREATE {type} INDEX {concurrently} {index} ON {table} ({fields})",
	core.DropTable:   "DROP TABLE IF EXISTS {table} {action}",
	core.DropIndex:   "DROP INDEX {concurrently} IF EXISTS {index} {action}",
}

// TypeAliases maps canonical type tokens to PostgreSQL spellings.
var TypeAliases = map[string]string{
	"int":      "integer",
	"tinyint":  "smallint",
	"double":   "double precision",
	"datetime": "timestamp",
	"blob":     "bytea",
	"binary":   "bytea",
}
