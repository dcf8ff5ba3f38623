package query

import "github.com/leapstack-labs/sqlrender/pkg/core"

// Expr is a raw SQL fragment inlined verbatim into rendered output.
type Expr string

// Raw returns s as a raw expression.
func Raw(s string) Expr {
	return Expr(s)
}

// Node is a predicate tree element: a *Condition or a *Predicate.
type Node interface {
	node() // marker method to restrict implementation
}

// Condition compares one field through an operator clause.
// Value is nil for IsNull/IsNotNull, a two-element slice for Between, a slice
// for In/NotIn, and a single value otherwise.
type Condition struct {
	Field string
	Op    core.Clause
	Value any
}

func (*Condition) node() {}

// Predicate joins its items with a conjunction keyword (And or Or).
type Predicate struct {
	Conjunction core.Keyword
	Items       []Node
}

func (*Predicate) node() {}

// Empty reports whether the predicate contains no conditions.
func (p *Predicate) Empty() bool {
	return p == nil || len(p.Items) == 0
}

// Add appends items to the predicate.
func (p *Predicate) Add(items ...Node) *Predicate {
	p.Items = append(p.Items, items...)
	return p
}

// And groups items with AND.
func And(items ...Node) *Predicate {
	return &Predicate{Conjunction: core.And, Items: items}
}

// Or groups items with OR.
func Or(items ...Node) *Predicate {
	return &Predicate{Conjunction: core.Or, Items: items}
}

// Cond builds a condition with an explicit operator clause.
func Cond(field string, op core.Clause, value any) *Condition {
	return &Condition{Field: field, Op: op, Value: value}
}

// Eq is field = value.
func Eq(field string, value any) *Condition { return Cond(field, core.Equals, value) }

// Ne is field != value.
func Ne(field string, value any) *Condition { return Cond(field, core.NotEquals, value) }

// Gt is field > value.
func Gt(field string, value any) *Condition { return Cond(field, core.GreaterThan, value) }

// Gte is field >= value.
func Gte(field string, value any) *Condition { return Cond(field, core.GreaterThanOrEqual, value) }

// Lt is field < value.
func Lt(field string, value any) *Condition { return Cond(field, core.LessThan, value) }

// Lte is field <= value.
func Lte(field string, value any) *Condition { return Cond(field, core.LessThanOrEqual, value) }

// Like is field LIKE value.
func Like(field string, value any) *Condition { return Cond(field, core.Like, value) }

// NotLike is field NOT LIKE value.
func NotLike(field string, value any) *Condition { return Cond(field, core.NotLike, value) }

// In is field IN (values...).
func In(field string, values ...any) *Condition { return Cond(field, core.In, values) }

// NotIn is field NOT IN (values...).
func NotIn(field string, values ...any) *Condition { return Cond(field, core.NotIn, values) }

// Between is field BETWEEN lo AND hi.
func Between(field string, lo, hi any) *Condition {
	return Cond(field, core.Between, []any{lo, hi})
}

// NotBetween is field NOT BETWEEN lo AND hi.
func NotBetween(field string, lo, hi any) *Condition {
	return Cond(field, core.NotBetween, []any{lo, hi})
}

// IsNull is field IS NULL.
func IsNull(field string) *Condition { return Cond(field, core.IsNull, nil) }

// IsNotNull is field IS NOT NULL.
func IsNotNull(field string) *Condition { return Cond(field, core.IsNotNull, nil) }

// Regexp matches field against a regular expression.
func Regexp(field string, pattern string) *Condition { return Cond(field, core.Regexp, pattern) }

// NotRegexp is the negation of Regexp.
func NotRegexp(field string, pattern string) *Condition {
	return Cond(field, core.NotRegexp, pattern)
}
