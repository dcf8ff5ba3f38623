package dialect

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/leapstack-labs/sqlrender/pkg/query"
)

// Render renders q into SQL with ? placeholders and returns the parameters
// in placeholder order. On error no SQL is returned.
func (d *Dialect) Render(q *query.Query) (string, []any, error) {
	r := &renderer{d: d}
	sql, err := r.render(q)
	if err != nil {
		return "", nil, err
	}
	return sql, r.params, nil
}

// renderer accumulates parameters across one Render call, including
// nested compound selects.
type renderer struct {
	d      *Dialect
	params []any
}

func (r *renderer) render(q *query.Query) (string, error) {
	stmt, err := r.d.Statement(q.Kind())
	if err != nil {
		return "", err
	}

	values := make(map[string]string, len(stmt.Slots()))
	for _, name := range stmt.Slots() {
		text, err := r.slot(name, q)
		if err != nil {
			return "", err
		}
		values[name] = text
	}
	return stmt.Render(values), nil
}

// slot renders one template slot. Slots without content render "".
func (r *renderer) slot(name string, q *query.Query) (string, error) {
	d := r.d
	switch name {
	case "table":
		return r.table(q.Table(), q.Alias())
	case "distinct":
		if on := q.GetDistinctOn(); len(on) > 0 {
			return d.FormatClause(core.DistinctOn, d.quoteList(on))
		}
		if q.IsDistinct() {
			return d.Keyword(core.Distinct)
		}
		return "", nil
	case "fields":
		return r.fields(q)
	case "values":
		return r.values(q), nil
	case "joins":
		return r.joins(q.GetJoins())
	case "where":
		return r.clausePredicate(core.Where, q.GetWhere())
	case "having":
		return r.clausePredicate(core.Having, q.GetHaving())
	case "groupBy":
		if len(q.GetGroupBy()) == 0 {
			return "", nil
		}
		return d.FormatClause(core.GroupBy, d.quoteList(q.GetGroupBy()))
	case "orderBy":
		return r.orderBy(q.GetOrderBy())
	case "limit":
		limit, offset := q.GetLimit()
		if limit <= 0 {
			return "", nil
		}
		if offset > 0 {
			return d.FormatClause(core.LimitOffset, strconv.Itoa(limit), strconv.Itoa(offset))
		}
		return d.FormatClause(core.Limit, strconv.Itoa(limit))
	case "compounds":
		return r.compounds(q.GetCompounds())
	case "lock":
		switch q.GetLock() {
		case query.LockForUpdate:
			return d.Keyword(core.ForUpdateLock)
		case query.LockForShare:
			return d.Keyword(core.ForShareLock)
		default:
			return "", nil
		}
	case "returning":
		if len(q.GetReturning()) == 0 {
			return "", nil
		}
		return d.FormatClause(core.Returning, d.quoteList(q.GetReturning()))
	case "columns":
		if q.Schema() == nil {
			return "", nil
		}
		return d.FormatColumns(q.Schema())
	case "keys":
		if q.Schema() == nil {
			return "", nil
		}
		return d.formatKeys(q.Schema())
	case "options":
		if q.Schema() == nil {
			return "", nil
		}
		return d.formatOptions(q.Schema().Options)
	case "index":
		if q.Index() == "" {
			return "", nil
		}
		return d.QuoteIdentifier(q.Index()), nil
	default:
		kw, ok := q.Attribute(name)
		if !ok {
			return "", nil
		}
		return d.Keyword(kw)
	}
}

func (r *renderer) table(name, alias string) (string, error) {
	quoted := r.d.Quote(name)
	if alias == "" {
		return quoted, nil
	}
	return r.d.FormatClause(core.AsAlias, quoted, r.d.QuoteIdentifier(alias))
}

func (r *renderer) fields(q *query.Query) (string, error) {
	d := r.d
	switch q.Kind() {
	case core.Select:
		fields := q.GetFields()
		if len(fields) == 0 {
			return "*", nil
		}
		out := make([]string, 0, len(fields))
		for _, f := range fields {
			text := string(f.Expr)
			if f.Name != "" {
				text = d.Quote(f.Name)
			}
			if f.Alias != "" {
				var err error
				if text, err = d.FormatClause(core.AsAlias, text, d.QuoteIdentifier(f.Alias)); err != nil {
					return "", err
				}
			}
			out = append(out, text)
		}
		return strings.Join(out, ", "), nil

	case core.Insert:
		vals := q.GetValues()
		names := make([]string, len(vals))
		for i, v := range vals {
			names[i] = v.Field
		}
		return "(" + d.quoteList(names) + ")", nil

	case core.Update:
		vals := q.GetValues()
		out := make([]string, len(vals))
		for i, v := range vals {
			out[i] = d.Quote(v.Field) + " = " + r.bind(v.Value)
		}
		return strings.Join(out, ", "), nil

	case core.CreateIndex:
		names := make([]string, 0, len(q.GetFields()))
		for _, f := range q.GetFields() {
			names = append(names, f.Name)
		}
		return d.quoteList(names), nil
	}
	return "", nil
}

func (r *renderer) values(q *query.Query) string {
	if q.Kind() != core.Insert {
		return ""
	}
	vals := q.GetValues()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = r.bind(v.Value)
	}
	return "(" + strings.Join(out, ", ") + ")"
}

func (r *renderer) joins(joins []query.Join) (string, error) {
	out := make([]string, 0, len(joins))
	for _, j := range joins {
		table, err := r.table(j.Table, j.Alias)
		if err != nil {
			return "", err
		}
		if j.Type == core.JoinCross {
			text, err := r.d.FormatClause(core.JoinCross, table)
			if err != nil {
				return "", err
			}
			out = append(out, text)
			continue
		}

		and, err := r.d.Keyword(core.And)
		if err != nil {
			return "", err
		}
		conds := make([]string, len(j.On))
		for i, on := range j.On {
			conds[i] = r.d.Quote(on.Left) + " = " + r.d.Quote(on.Right)
		}
		text, err := r.d.FormatClause(j.Type, table, strings.Join(conds, " "+and+" "))
		if err != nil {
			return "", err
		}
		out = append(out, text)
	}
	return strings.Join(out, " "), nil
}

func (r *renderer) orderBy(orders []query.Order) (string, error) {
	if len(orders) == 0 {
		return "", nil
	}
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = r.d.Quote(o.Field)
		if o.Dir != core.KeywordInvalid {
			dir, err := r.d.Keyword(o.Dir)
			if err != nil {
				return "", err
			}
			out[i] += " " + dir
		}
	}
	return r.d.FormatClause(core.OrderBy, strings.Join(out, ", "))
}

func (r *renderer) compounds(compounds []query.Compound) (string, error) {
	out := make([]string, 0, len(compounds))
	for _, c := range compounds {
		sub, err := r.render(c.Query)
		if err != nil {
			return "", err
		}
		text, err := r.d.FormatClause(c.Type, sub)
		if err != nil {
			return "", err
		}
		out = append(out, text)
	}
	return strings.Join(out, " "), nil
}

func (r *renderer) clausePredicate(c core.Clause, p *query.Predicate) (string, error) {
	if p.Empty() {
		return "", nil
	}
	text, err := r.predicate(p)
	if err != nil {
		return "", err
	}
	return r.d.FormatClause(c, text)
}

func (r *renderer) predicate(p *query.Predicate) (string, error) {
	conjunction := p.Conjunction
	if conjunction == core.KeywordInvalid {
		conjunction = core.And
	}
	conj, err := r.d.Keyword(conjunction)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		switch n := item.(type) {
		case *query.Condition:
			text, err := r.condition(n)
			if err != nil {
				return "", err
			}
			parts = append(parts, text)
		case *query.Predicate:
			if n.Empty() {
				continue
			}
			text, err := r.predicate(n)
			if err != nil {
				return "", err
			}
			if len(n.Items) > 1 {
				text = "(" + text + ")"
			}
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " "+conj+" "), nil
}

func (r *renderer) condition(c *query.Condition) (string, error) {
	format, err := r.d.Clause(c.Op)
	if err != nil {
		return "", err
	}
	field := r.d.Quote(c.Field)

	switch c.Op {
	case core.In, core.NotIn:
		list := toSlice(c.Value)
		if len(list) == 0 {
			return "", fmt.Errorf("%w: %s on %q needs at least one value", ErrInvalidCondition, c.Op, c.Field)
		}
		out := make([]string, len(list))
		for i, v := range list {
			out[i] = r.bind(v)
		}
		return sprintf(format, field, strings.Join(out, ", ")), nil
	case core.IsNull, core.IsNotNull:
		return sprintf(format, field), nil
	case core.Between, core.NotBetween:
		bounds := toSlice(c.Value)
		if len(bounds) != 2 {
			return "", fmt.Errorf("%w: %s on %q needs two values, got %d", ErrInvalidCondition, c.Op, c.Field, len(bounds))
		}
		return sprintf(r.fill(format, bounds), field), nil
	default:
		return sprintf(r.fill(format, []any{c.Value}), field), nil
	}
}

// fill replaces the ? markers of a clause format with bound values, in order.
func (r *renderer) fill(format string, values []any) string {
	var b strings.Builder
	i := 0
	for _, ch := range format {
		if ch == '?' && i < len(values) {
			b.WriteString(strings.ReplaceAll(r.bind(values[i]), "%", "%%"))
			i++
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// bind returns the placeholder for v, recording it as a parameter. Raw
// expressions are inlined instead.
func (r *renderer) bind(v any) string {
	if e, ok := v.(query.Expr); ok {
		return string(e)
	}
	r.params = append(r.params, v)
	return "?"
}

// toSlice expands a slice or array value into its elements. Byte slices and
// scalars are a single value; nil is no value.
func toSlice(v any) []any {
	switch x := v.(type) {
	case nil:
		return nil
	case []any:
		return x
	case []byte:
		return []any{x}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{v}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
