package ansi

import "github.com/leapstack-labs/sqlrender/pkg/core"

// Keywords is the baseline keyword text.
var Keywords = map[core.Keyword]string{
	core.All:           "ALL",
	core.And:           "AND",
	core.Or:            "OR",
	core.Asc:           "ASC",
	core.Desc:          "DESC",
	core.Distinct:      "DISTINCT",
	core.Null:          "NULL",
	core.NotNull:       "NOT NULL",
	core.Temporary:     "TEMPORARY",
	core.Unique:        "UNIQUE",
	core.Cascade:       "CASCADE",
	core.Restrict:      "RESTRICT",
	core.SetNull:       "SET NULL",
	core.SetDefault:    "SET DEFAULT",
	core.NoAction:      "NO ACTION",
	core.ForUpdateLock: "FOR UPDATE",
}

// Clauses is the baseline clause formats. A ? is a bound value.
var Clauses = map[core.Clause]string{
	core.AsAlias:     "%s AS %s",
	core.Collate:     "COLLATE %s",
	core.Constraint:  "CONSTRAINT %s",
	core.DefaultTo:   "DEFAULT %s",
	core.Where:       "WHERE %s",
	core.Having:      "HAVING %s",
	core.GroupBy:     "GROUP BY %s",
	core.OrderBy:     "ORDER BY %s",
	core.Limit:       "LIMIT %s",
	core.LimitOffset: "LIMIT %s OFFSET %s",

	core.Union:     "UNION %s",
	core.UnionAll:  "UNION ALL %s",
	core.Intersect: "INTERSECT %s",
	core.Except:    "EXCEPT %s",

	core.JoinInner: "INNER JOIN %s ON %s",
	core.JoinLeft:  "LEFT JOIN %s ON %s",
	core.JoinRight: "RIGHT JOIN %s ON %s",
	core.JoinOuter: "FULL OUTER JOIN %s ON %s",
	core.JoinCross: "CROSS JOIN %s",

	core.Equals:             "%s = ?",
	core.NotEquals:          "%s != ?",
	core.GreaterThan:        "%s > ?",
	core.GreaterThanOrEqual: "%s >= ?",
	core.LessThan:           "%s < ?",
	core.LessThanOrEqual:    "%s <= ?",
	core.Like:               "%s LIKE ?",
	core.NotLike:            "%s NOT LIKE ?",
	core.In:                 "%s IN (%s)",
	core.NotIn:              "%s NOT IN (%s)",
	core.Between:            "%s BETWEEN ? AND ?",
	core.NotBetween:         "%s NOT BETWEEN ? AND ?",
	core.IsNull:             "%s IS NULL",
	core.IsNotNull:          "%s IS NOT NULL",
	core.Regexp:             "%s SIMILAR TO ?",
	core.NotRegexp:          "%s NOT SIMILAR TO ?",

	core.PrimaryKey: "PRIMARY KEY (%s)",
	core.UniqueKey:  "CONSTRAINT %s UNIQUE (%s)",
	core.ForeignKey: "CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s)",
	core.OnDelete:   "ON DELETE %s",
	core.OnUpdate:   "ON UPDATE %s",
}

// Statements is the baseline statement templates.
var Statements = map[core.QueryKind]string{
	core.Insert:      "INSERT INTO {table} {fields} VALUES {values}",
	core.Select:      "SELECT {distinct} {fields} FROM {table} {joins} {where} {groupBy} {having} {compounds} {orderBy} {limit} {lock}",
	core.Update:      "UPDATE {table} SET {fields} {where}",
	core.Delete:      "DELETE FROM {table} {where}",
	core.Truncate:    "TRUNCATE TABLE {table}",
	core.CreateTable: "CREATE {temporary} TABLE IF NOT EXISTS {table} (\n{columns}{keys}\n) {options}",
	core.CreateIndex: "CREATE {type} INDEX {index} ON {table} ({fields})",
	core.DropTable:   "DROP TABLE IF EXISTS {table} {action}",
	core.DropIndex:   "DROP INDEX IF EXISTS {index}",
}
