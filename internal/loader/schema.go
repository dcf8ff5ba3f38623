package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/sqlrender/pkg/core"
)

// schemaDoc is the YAML form of a table definition:
//
//	name: users
//	columns:
//	  id: {type: int, primary: true, auto_increment: true}
//	  email: {type: varchar, length: 320, unique: true}
//	  bio: text
//	keys:
//	  - type: foreign
//	    columns: [team_id]
//	    references: {table: teams, columns: [id], on_delete: cascade}
//	options:
//	  - engine: InnoDB
type schemaDoc struct {
	Name    string      `yaml:"name"`
	Columns columnsDoc  `yaml:"columns"`
	Keys    []keyDoc    `yaml:"keys"`
	Options []optionDoc `yaml:"options"`
}

func (d *schemaDoc) build(defaultName string) (*core.Schema, error) {
	name := d.Name
	if name == "" {
		name = defaultName
	}
	if name == "" {
		return nil, fmt.Errorf("schema name is required")
	}
	if len(d.Columns) == 0 {
		return nil, fmt.Errorf("schema %s: at least one column is required", name)
	}

	s := core.NewSchema(name)
	for _, c := range d.Columns {
		s.AddColumn(c.name, c.opts)
	}

	for i, k := range d.Keys {
		key, err := k.build()
		if err != nil {
			return nil, fmt.Errorf("schema %s: keys[%d]: %w", name, i, err)
		}
		s.AddKey(key)
	}

	for i, o := range d.Options {
		kw, err := lookupKeyword(o.keyword)
		if err != nil {
			return nil, fmt.Errorf("schema %s: options[%d]: %w", name, i, err)
		}
		s.AddOption(kw, o.value)
	}
	return s, nil
}

// columnsDoc is an ordered mapping of column name to definition.
type columnsDoc []columnEntry

type columnEntry struct {
	name string
	opts core.ColumnOptions
}

// UnmarshalYAML keeps the mapping order, which is the column order.
func (c *columnsDoc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: columns must be a mapping of name to definition", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		var col columnDoc
		if err := valNode.Decode(&col); err != nil {
			return fmt.Errorf("column %s: %w", keyNode.Value, err)
		}
		*c = append(*c, columnEntry{name: keyNode.Value, opts: col.options()})
	}
	return nil
}

// columnDoc is one column definition. A bare scalar is shorthand for the
// type name.
type columnDoc struct {
	Type          string `yaml:"type"`
	Length        int    `yaml:"length"`
	Scale         int    `yaml:"scale"`
	Nullable      *bool  `yaml:"nullable"`
	Primary       bool   `yaml:"primary"`
	Unique        bool   `yaml:"unique"`
	AutoIncrement bool   `yaml:"auto_increment"`
	Constraint    string `yaml:"constraint"`
	Collate       string `yaml:"collate"`
	Comment       string `yaml:"comment"`

	Default    any `yaml:"default"`
	hasDefault bool
}

func (c *columnDoc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		c.Type = node.Value
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: column definition must be a type name or a mapping", node.Line)
	}

	type plain columnDoc
	if err := node.Decode((*plain)(c)); err != nil {
		return err
	}
	// A null default decodes to nil, so presence is read from the node.
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "default" {
			c.hasDefault = true
		}
	}
	return nil
}

func (c columnDoc) options() core.ColumnOptions {
	opts := core.ColumnOptions{
		Type:          c.Type,
		Length:        c.Length,
		Scale:         c.Scale,
		Nullable:      c.Nullable,
		Primary:       c.Primary,
		Unique:        c.Unique,
		AutoIncrement: c.AutoIncrement,
		Constraint:    c.Constraint,
		Collate:       c.Collate,
		Comment:       c.Comment,
	}
	if c.hasDefault {
		opts.Default = core.DefaultValue(c.Default)
	}
	return opts
}

type keyDoc struct {
	Type       string        `yaml:"type"`
	Name       string        `yaml:"name"`
	Columns    []string      `yaml:"columns"`
	References *referenceDoc `yaml:"references"`
}

type referenceDoc struct {
	Table    string   `yaml:"table"`
	Columns  []string `yaml:"columns"`
	Match    string   `yaml:"match"`
	OnDelete string   `yaml:"on_delete"`
	OnUpdate string   `yaml:"on_update"`
}

var keyTypes = map[string]core.KeyType{
	"primary": core.KeyPrimary,
	"unique":  core.KeyUnique,
	"foreign": core.KeyForeign,
}

func (k keyDoc) build() (core.Key, error) {
	typ, ok := keyTypes[normalize(k.Type)]
	if !ok {
		return core.Key{}, &UnknownSymbolError{Category: "key type", Name: k.Type}
	}
	if len(k.Columns) == 0 {
		return core.Key{}, fmt.Errorf("%s key has no columns", typ)
	}
	key := core.Key{Type: typ, Name: k.Name, Columns: k.Columns}

	if typ != core.KeyForeign {
		if k.References != nil {
			return core.Key{}, fmt.Errorf("%s key cannot have references", typ)
		}
		return key, nil
	}

	if k.References == nil || k.References.Table == "" {
		return core.Key{}, fmt.Errorf("foreign key requires a referenced table")
	}
	ref := &core.Reference{Table: k.References.Table, Columns: k.References.Columns}
	for _, f := range []struct {
		name string
		dst  *core.Keyword
	}{
		{k.References.Match, &ref.Match},
		{k.References.OnDelete, &ref.OnDelete},
		{k.References.OnUpdate, &ref.OnUpdate},
	} {
		if f.name == "" {
			continue
		}
		kw, err := lookupKeyword(f.name)
		if err != nil {
			// Match values may omit the "match" prefix.
			if kw, err = lookupKeyword("match" + f.name); err != nil {
				return core.Key{}, &UnknownSymbolError{Category: "keyword", Name: f.name}
			}
		}
		*f.dst = kw
	}
	key.References = ref
	return key, nil
}

// optionDoc is one table option: a bare keyword, or a single-key mapping of
// keyword to value. A scalar value naming a keyword becomes that keyword; a
// sequence becomes a name list.
type optionDoc struct {
	keyword string
	value   any
}

func (o *optionDoc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		o.keyword = node.Value
		return nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: table option must have exactly one key", node.Line)
		}
	default:
		return fmt.Errorf("line %d: table option must be a keyword or a mapping", node.Line)
	}

	o.keyword = node.Content[0].Value
	val := node.Content[1]
	switch val.Kind {
	case yaml.SequenceNode:
		var names []string
		if err := val.Decode(&names); err != nil {
			return err
		}
		o.value = names
	case yaml.ScalarNode:
		if kw, err := lookupKeyword(val.Value); err == nil && val.Tag == "!!str" {
			o.value = kw
		} else {
			o.value = val.Value
		}
	default:
		return fmt.Errorf("line %d: unsupported value for table option %s", val.Line, o.keyword)
	}
	return nil
}
