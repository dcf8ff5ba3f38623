package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/leapstack-labs/sqlrender/pkg/query"
)

// queryDoc is the YAML form of a query:
//
//	kind: select
//	table: users
//	alias: u
//	fields: [id, {name: email, as: contact}, {expr: "COUNT(*)", as: total}]
//	joins:
//	  - {type: left, table: teams, alias: t, on: [{left: u.team_id, right: t.id}]}
//	where:
//	  - {field: active, op: "=", value: true}
//	  - or:
//	      - {field: age, op: ">", value: 18}
//	      - {field: deleted_at, op: isNull}
//	order_by: [{field: email, dir: desc}]
//	limit: 10
type queryDoc struct {
	Kind       string            `yaml:"kind"`
	Table      string            `yaml:"table"`
	Alias      string            `yaml:"alias"`
	Distinct   bool              `yaml:"distinct"`
	DistinctOn []string          `yaml:"distinct_on"`
	Fields     []fieldDoc        `yaml:"fields"`
	Values     valuesDoc         `yaml:"values"`
	Joins      []joinDoc         `yaml:"joins"`
	Where      []conditionDoc    `yaml:"where"`
	GroupBy    []string          `yaml:"group_by"`
	Having     []conditionDoc    `yaml:"having"`
	OrderBy    []orderDoc        `yaml:"order_by"`
	Limit      int               `yaml:"limit"`
	Offset     int               `yaml:"offset"`
	Lock       string            `yaml:"lock"`
	Compounds  []compoundDoc     `yaml:"compounds"`
	Returning  []string          `yaml:"returning"`
	Index      string            `yaml:"index"`
	Attributes map[string]string `yaml:"attributes"`
	Schema     *schemaDoc        `yaml:"schema"`
}

// build converts the document into a query. defaultKind is used when the
// document names no kind.
func (d *queryDoc) build(defaultKind core.QueryKind) (*query.Query, error) {
	kind := defaultKind
	if d.Kind != "" {
		k, err := lookupKind(d.Kind)
		if err != nil {
			return nil, err
		}
		kind = k
	}
	if kind == core.KindInvalid {
		return nil, fmt.Errorf("query kind is required")
	}

	var q *query.Query
	if kind == core.CreateTable {
		if d.Schema == nil {
			return nil, fmt.Errorf("createTable requires a schema")
		}
		s, err := d.Schema.build(d.Table)
		if err != nil {
			return nil, err
		}
		q = query.CreateTable(s)
	} else {
		if d.Table == "" {
			return nil, fmt.Errorf("%s: table is required", kind)
		}
		if d.Schema != nil {
			return nil, fmt.Errorf("%s: schema is only valid for createTable", kind)
		}
		switch kind {
		case core.CreateIndex, core.DropIndex:
			if d.Index == "" {
				return nil, fmt.Errorf("%s: index is required", kind)
			}
			q = query.DropIndex(d.Table, d.Index)
			if kind == core.CreateIndex {
				q = query.CreateIndex(d.Table, d.Index)
			}
		default:
			if d.Index != "" {
				return nil, fmt.Errorf("%s: index is only valid for createIndex and dropIndex", kind)
			}
			q = query.New(kind, d.Table)
		}
	}

	q.As(d.Alias)
	if d.Distinct {
		q.Distinct()
	}
	if len(d.DistinctOn) > 0 {
		q.DistinctOn(d.DistinctOn...)
	}

	for _, f := range d.Fields {
		switch {
		case f.Expr != "":
			q.FieldExpr(query.Raw(f.Expr), f.As)
		case f.As != "":
			q.FieldAs(f.Name, f.As)
		default:
			q.Fields(f.Name)
		}
	}

	for _, v := range d.Values {
		q.Set(v.field, v.value)
	}

	for i, j := range d.Joins {
		typ, err := lookupJoin(j.Type)
		if err != nil {
			return nil, fmt.Errorf("joins[%d]: %w", i, err)
		}
		on := make([]query.On, len(j.On))
		for n, o := range j.On {
			on[n] = query.On{Left: o.Left, Right: o.Right}
		}
		q.JoinAs(typ, j.Table, j.Alias, on...)
	}

	if len(d.Where) > 0 {
		nodes, err := buildConditions("where", d.Where)
		if err != nil {
			return nil, err
		}
		q.Where(nodes...)
	}
	if len(d.GroupBy) > 0 {
		q.GroupBy(d.GroupBy...)
	}
	if len(d.Having) > 0 {
		nodes, err := buildConditions("having", d.Having)
		if err != nil {
			return nil, err
		}
		q.Having(nodes...)
	}

	for i, o := range d.OrderBy {
		var dir core.Keyword
		if o.Dir != "" {
			kw, err := lookupKeyword(o.Dir)
			if err != nil || (kw != core.Asc && kw != core.Desc) {
				return nil, fmt.Errorf("order_by[%d]: direction must be asc or desc, got %q", i, o.Dir)
			}
			dir = kw
		}
		q.OrderBy(o.Field, dir)
	}

	if d.Limit < 0 || d.Offset < 0 {
		return nil, fmt.Errorf("limit and offset must not be negative")
	}
	q.Limit(d.Limit, d.Offset)

	lock, err := lookupLock(d.Lock)
	if err != nil {
		return nil, err
	}
	q.Lock(lock)

	for i, c := range d.Compounds {
		typ, err := lookupCompound(c.Type)
		if err != nil {
			return nil, fmt.Errorf("compounds[%d]: %w", i, err)
		}
		if c.Query == nil {
			return nil, fmt.Errorf("compounds[%d]: query is required", i)
		}
		sub, err := c.Query.build(core.Select)
		if err != nil {
			return nil, fmt.Errorf("compounds[%d]: %w", i, err)
		}
		q.Compound(typ, sub)
	}

	if len(d.Returning) > 0 {
		q.Returning(d.Returning...)
	}

	for slot, name := range d.Attributes {
		kw, err := lookupKeyword(name)
		if err != nil {
			return nil, fmt.Errorf("attributes.%s: %w", slot, err)
		}
		q.Attr(slot, kw)
	}
	return q, nil
}

// fieldDoc is a field list entry: a bare name, or a mapping with name or
// expr and an optional alias.
type fieldDoc struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
	As   string `yaml:"as"`
}

func (f *fieldDoc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Name = node.Value
		return nil
	}
	type plain fieldDoc
	if err := node.Decode((*plain)(f)); err != nil {
		return err
	}
	if (f.Name == "") == (f.Expr == "") {
		return fmt.Errorf("line %d: field needs exactly one of name or expr", node.Line)
	}
	return nil
}

// valuesDoc is an ordered mapping of field to value for insert and update.
type valuesDoc []valueEntry

type valueEntry struct {
	field string
	value any
}

func (v *valuesDoc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: values must be a mapping of field to value", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var val any
		if err := node.Content[i+1].Decode(&val); err != nil {
			return fmt.Errorf("values.%s: %w", node.Content[i].Value, err)
		}
		*v = append(*v, valueEntry{field: node.Content[i].Value, value: val})
	}
	return nil
}

type joinDoc struct {
	Type  string  `yaml:"type"`
	Table string  `yaml:"table"`
	Alias string  `yaml:"alias"`
	On    []onDoc `yaml:"on"`
}

type onDoc struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// conditionDoc is either a condition (field, op, value) or a nested group
// under and/or.
type conditionDoc struct {
	Field string         `yaml:"field"`
	Op    string         `yaml:"op"`
	Value any            `yaml:"value"`
	And   []conditionDoc `yaml:"and"`
	Or    []conditionDoc `yaml:"or"`
}

func buildConditions(path string, docs []conditionDoc) ([]query.Node, error) {
	nodes := make([]query.Node, 0, len(docs))
	for i, c := range docs {
		n, err := c.build(fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (c conditionDoc) build(path string) (query.Node, error) {
	switch {
	case len(c.And) > 0 && len(c.Or) > 0:
		return nil, fmt.Errorf("%s: and and or cannot be combined in one entry", path)
	case len(c.And) > 0:
		nodes, err := buildConditions(path+".and", c.And)
		if err != nil {
			return nil, err
		}
		return query.And(nodes...), nil
	case len(c.Or) > 0:
		nodes, err := buildConditions(path+".or", c.Or)
		if err != nil {
			return nil, err
		}
		return query.Or(nodes...), nil
	}

	if c.Field == "" {
		return nil, fmt.Errorf("%s: field is required", path)
	}
	op := core.Equals
	if c.Op != "" {
		o, err := lookupOperator(c.Op)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		op = o
	}

	switch op {
	case core.IsNull, core.IsNotNull:
		if c.Value != nil {
			return nil, fmt.Errorf("%s: %s takes no value", path, op)
		}
	case core.In, core.NotIn:
		if list, ok := c.Value.([]any); !ok || len(list) == 0 {
			return nil, fmt.Errorf("%s: %s needs a non-empty list value", path, op)
		}
	case core.Between, core.NotBetween:
		if list, ok := c.Value.([]any); !ok || len(list) != 2 {
			return nil, fmt.Errorf("%s: %s needs a two-element list value", path, op)
		}
	}
	return query.Cond(c.Field, op, c.Value), nil
}

type orderDoc struct {
	Field string `yaml:"field"`
	Dir   string `yaml:"dir"`
}

func (o *orderDoc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		o.Field = node.Value
		return nil
	}
	type plain orderDoc
	return node.Decode((*plain)(o))
}

type compoundDoc struct {
	Type  string    `yaml:"type"`
	Query *queryDoc `yaml:"query"`
}
