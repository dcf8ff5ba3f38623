// Package query provides the abstract, backend-agnostic description of a
// relational statement. A Query holds no SQL text; a dialect renders it.
package query

import "github.com/leapstack-labs/sqlrender/pkg/core"

// LockMode requests row locking on a select.
type LockMode int

// LockMode constants.
const (
	LockNone LockMode = iota
	LockForUpdate
	LockForShare
)

// String returns the string representation of LockMode.
func (m LockMode) String() string {
	switch m {
	case LockNone:
		return "none"
	case LockForUpdate:
		return "update"
	case LockForShare:
		return "share"
	default:
		return "unknown"
	}
}

// Field is one entry of a field list.
type Field struct {
	Name  string // identifier, quoted on render; "*" renders as is
	Expr  Expr   // raw expression, used when Name is empty
	Alias string
}

// Value pairs a field with the data written to it.
type Value struct {
	Field string
	Value any
}

// On is one equality of a join condition: Left = Right.
type On struct {
	Left  string
	Right string
}

// Join is a join onto another table.
type Join struct {
	Type  core.Clause // JoinInner, JoinLeft, JoinRight, JoinOuter, JoinStraight, JoinCross
	Table string
	Alias string
	On    []On
}

// Order is one ORDER BY item.
type Order struct {
	Field string
	Dir   core.Keyword // Asc or Desc, zero for the backend default
}

// Compound combines a select with another through UNION, INTERSECT or EXCEPT.
type Compound struct {
	Type  core.Clause
	Query *Query
}

// Query is an abstract statement of one kind.
type Query struct {
	kind       core.QueryKind
	table      string
	alias      string
	fields     []Field
	values     []Value
	distinct   bool
	distinctOn []string
	joins      []Join
	where      *Predicate
	groupBy    []string
	having     *Predicate
	orderBy    []Order
	limit      int
	offset     int
	lock       LockMode
	compounds  []Compound
	returning  []string
	index      string
	schema     *core.Schema
	attrs      map[string]core.Keyword
}

// New creates a query of the given kind against table.
func New(kind core.QueryKind, table string) *Query {
	return &Query{kind: kind, table: table}
}

// Select creates a select over table. No fields selects every column.
func Select(table string, fields ...string) *Query {
	return New(core.Select, table).Fields(fields...)
}

// Insert creates an insert into table.
func Insert(table string) *Query { return New(core.Insert, table) }

// Update creates an update of table.
func Update(table string) *Query { return New(core.Update, table) }

// Delete creates a delete from table.
func Delete(table string) *Query { return New(core.Delete, table) }

// Truncate creates a truncate of table.
func Truncate(table string) *Query { return New(core.Truncate, table) }

// DropTable creates a drop of table.
func DropTable(table string) *Query { return New(core.DropTable, table) }

// CreateTable creates a table from schema.
func CreateTable(schema *core.Schema) *Query {
	q := New(core.CreateTable, schema.Name)
	q.schema = schema
	return q
}

// CreateIndex creates an index over fields of table.
func CreateIndex(table, index string, fields ...string) *Query {
	q := New(core.CreateIndex, table).Fields(fields...)
	q.index = index
	return q
}

// DropIndex creates a drop of index. Some backends also need the table.
func DropIndex(table, index string) *Query {
	q := New(core.DropIndex, table)
	q.index = index
	return q
}

// ---------- Builder methods ----------

// As sets the table alias.
func (q *Query) As(alias string) *Query {
	q.alias = alias
	return q
}

// Fields appends named fields.
func (q *Query) Fields(names ...string) *Query {
	for _, n := range names {
		q.fields = append(q.fields, Field{Name: n})
	}
	return q
}

// FieldAs appends a named field with an alias.
func (q *Query) FieldAs(name, alias string) *Query {
	q.fields = append(q.fields, Field{Name: name, Alias: alias})
	return q
}

// FieldExpr appends a raw expression field with an optional alias.
func (q *Query) FieldExpr(expr Expr, alias string) *Query {
	q.fields = append(q.fields, Field{Expr: expr, Alias: alias})
	return q
}

// Set appends a field/value pair for insert and update.
func (q *Query) Set(field string, value any) *Query {
	q.values = append(q.values, Value{Field: field, Value: value})
	return q
}

// Distinct marks a select as DISTINCT.
func (q *Query) Distinct() *Query {
	q.distinct = true
	return q
}

// DistinctOn marks a select as DISTINCT ON the given fields.
func (q *Query) DistinctOn(fields ...string) *Query {
	q.distinctOn = append(q.distinctOn, fields...)
	return q
}

// Join appends a join of the given type.
func (q *Query) Join(typ core.Clause, table string, on ...On) *Query {
	q.joins = append(q.joins, Join{Type: typ, Table: table, On: on})
	return q
}

// JoinAs appends a join of the given type onto an aliased table.
func (q *Query) JoinAs(typ core.Clause, table, alias string, on ...On) *Query {
	q.joins = append(q.joins, Join{Type: typ, Table: table, Alias: alias, On: on})
	return q
}

// LeftJoin appends a LEFT JOIN.
func (q *Query) LeftJoin(table string, on ...On) *Query {
	return q.Join(core.JoinLeft, table, on...)
}

// InnerJoin appends an INNER JOIN.
func (q *Query) InnerJoin(table string, on ...On) *Query {
	return q.Join(core.JoinInner, table, on...)
}

// Where ANDs nodes onto the WHERE predicate.
func (q *Query) Where(nodes ...Node) *Query {
	if q.where == nil {
		q.where = And()
	}
	q.where.Add(nodes...)
	return q
}

// GroupBy appends GROUP BY fields.
func (q *Query) GroupBy(fields ...string) *Query {
	q.groupBy = append(q.groupBy, fields...)
	return q
}

// Having ANDs nodes onto the HAVING predicate.
func (q *Query) Having(nodes ...Node) *Query {
	if q.having == nil {
		q.having = And()
	}
	q.having.Add(nodes...)
	return q
}

// OrderBy appends an ORDER BY item.
func (q *Query) OrderBy(field string, dir core.Keyword) *Query {
	q.orderBy = append(q.orderBy, Order{Field: field, Dir: dir})
	return q
}

// Limit sets the row limit and offset. A zero limit disables both.
func (q *Query) Limit(limit, offset int) *Query {
	q.limit = limit
	q.offset = offset
	return q
}

// Lock requests row locking.
func (q *Query) Lock(mode LockMode) *Query {
	q.lock = mode
	return q
}

// Union appends UNION sub.
func (q *Query) Union(sub *Query) *Query {
	return q.Compound(core.Union, sub)
}

// Compound appends a compound of the given type.
func (q *Query) Compound(typ core.Clause, sub *Query) *Query {
	q.compounds = append(q.compounds, Compound{Type: typ, Query: sub})
	return q
}

// Returning sets the fields returned by a write.
func (q *Query) Returning(fields ...string) *Query {
	q.returning = append(q.returning, fields...)
	return q
}

// Attr sets the keyword rendered into the named template slot, e.g.
// Attr("only", core.Only) or Attr("action", core.Cascade).
func (q *Query) Attr(slot string, kw core.Keyword) *Query {
	if q.attrs == nil {
		q.attrs = make(map[string]core.Keyword)
	}
	q.attrs[slot] = kw
	return q
}

// ---------- Accessors ----------

// Kind returns the statement kind.
func (q *Query) Kind() core.QueryKind { return q.kind }

// Table returns the target table.
func (q *Query) Table() string { return q.table }

// Alias returns the table alias.
func (q *Query) Alias() string { return q.alias }

// GetFields returns the field list.
func (q *Query) GetFields() []Field { return q.fields }

// GetValues returns the field/value pairs of an insert or update.
func (q *Query) GetValues() []Value { return q.values }

// IsDistinct reports whether DISTINCT was requested.
func (q *Query) IsDistinct() bool { return q.distinct }

// GetDistinctOn returns the DISTINCT ON fields.
func (q *Query) GetDistinctOn() []string { return q.distinctOn }

// GetJoins returns the joins.
func (q *Query) GetJoins() []Join { return q.joins }

// GetWhere returns the WHERE predicate, nil when unset.
func (q *Query) GetWhere() *Predicate { return q.where }

// GetGroupBy returns the GROUP BY fields.
func (q *Query) GetGroupBy() []string { return q.groupBy }

// GetHaving returns the HAVING predicate, nil when unset.
func (q *Query) GetHaving() *Predicate { return q.having }

// GetOrderBy returns the ORDER BY items.
func (q *Query) GetOrderBy() []Order { return q.orderBy }

// GetLimit returns the limit and offset.
func (q *Query) GetLimit() (limit, offset int) { return q.limit, q.offset }

// GetLock returns the requested lock mode.
func (q *Query) GetLock() LockMode { return q.lock }

// GetCompounds returns the compound selects.
func (q *Query) GetCompounds() []Compound { return q.compounds }

// GetReturning returns the RETURNING fields.
func (q *Query) GetReturning() []string { return q.returning }

// Index returns the index name.
func (q *Query) Index() string { return q.index }

// Schema returns the schema of a create table.
func (q *Query) Schema() *core.Schema { return q.schema }

// Attribute returns the keyword set for slot.
func (q *Query) Attribute(slot string) (core.Keyword, bool) {
	kw, ok := q.attrs[slot]
	return kw, ok
}
