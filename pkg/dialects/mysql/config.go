package mysql

import "github.com/leapstack-labs/sqlrender/pkg/core"

// Keywords are the MySQL additions to the ANSI keywords.
var Keywords = map[core.Keyword]string{
	core.AutoIncrement: "AUTO_INCREMENT",
	core.ForShareLock:  "LOCK IN SHARE MODE",
	core.Engine:        "ENGINE",
	core.CharacterSet:  "CHARACTER SET",
	core.RowFormat:     "ROW_FORMAT",
}

// Clauses are the MySQL clause overrides.
var Clauses = map[core.Clause]string{
	core.Comment:      "COMMENT %s",
	core.JoinStraight: "STRAIGHT_JOIN %s ON %s",
	core.Regexp:       "%s REGEXP ?",
	core.NotRegexp:    "%s NOT REGEXP ?",
	core.RLike:        "%s RLIKE ?",
}

// Statements are the MySQL statement templates.
var Statements = map[core.QueryKind]string{
	core.Update:    "UPDATE {table} {joins} SET {fields} {where} {orderBy} {limit}",
	core.Delete:    "DELETE FROM {table} {joins} {where} {orderBy} {limit}",
	core.DropIndex: "DROP INDEX {index} ON {table}",
}

// TypeAliases maps canonical type tokens to MySQL spellings.
var TypeAliases = map[string]string{
	"boolean": "tinyint(1)",
	"uuid":    "char(36)",
}
