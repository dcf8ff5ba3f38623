package core

// Default holds a column default value. A nil *Default means the column has
// no default; a Default whose Value is nil renders DEFAULT NULL.
type Default struct {
	Value any
}

// DefaultValue returns a Default holding v.
func DefaultValue(v any) *Default {
	return &Default{Value: v}
}

// DefaultNull returns an explicit NULL default.
func DefaultNull() *Default {
	return &Default{}
}

// ColumnOptions describes one column of a schema.
// Zero values mean "not set"; Nullable and Default are pointers so that an
// explicit false or an explicit NULL can be told apart from absence.
type ColumnOptions struct {
	Type          string
	Length        int
	Scale         int
	Nullable      *bool
	Default       *Default
	Primary       bool
	Unique        bool
	AutoIncrement bool
	Constraint    string
	Collate       string
	Comment       string
}

// Bool returns a pointer to b, for use with ColumnOptions.Nullable.
func Bool(b bool) *bool {
	return &b
}

// IsNullable reports whether the column was explicitly declared nullable.
func (o ColumnOptions) IsNullable() bool {
	return o.Nullable != nil && *o.Nullable
}

// Merge returns o layered over base: every field set on o wins, every field
// left unset on o is taken from base.
func (o ColumnOptions) Merge(base ColumnOptions) ColumnOptions {
	out := base
	if o.Type != "" {
		out.Type = o.Type
	}
	if o.Length != 0 {
		out.Length = o.Length
	}
	if o.Scale != 0 {
		out.Scale = o.Scale
	}
	if o.Nullable != nil {
		out.Nullable = o.Nullable
	}
	if o.Default != nil {
		out.Default = o.Default
	}
	if o.Primary {
		out.Primary = true
	}
	if o.Unique {
		out.Unique = true
	}
	if o.AutoIncrement {
		out.AutoIncrement = true
	}
	if o.Constraint != "" {
		out.Constraint = o.Constraint
	}
	if o.Collate != "" {
		out.Collate = o.Collate
	}
	if o.Comment != "" {
		out.Comment = o.Comment
	}
	return out
}

// Column is a named column definition.
type Column struct {
	Name    string
	Options ColumnOptions
}

// KeyType identifies a table-level key.
type KeyType int

// KeyType constants.
const (
	KeyPrimary KeyType = iota
	KeyUnique
	KeyForeign
)

// String returns the string representation of KeyType.
func (t KeyType) String() string {
	switch t {
	case KeyPrimary:
		return "primary"
	case KeyUnique:
		return "unique"
	case KeyForeign:
		return "foreign"
	default:
		return "unknown"
	}
}

// Reference is the target of a foreign key.
type Reference struct {
	Table    string
	Columns  []string
	Match    Keyword // MatchFull, MatchPartial, MatchSimple or zero
	OnDelete Keyword // Cascade, Restrict, SetNull, SetDefault, NoAction or zero
	OnUpdate Keyword
}

// Key is a table-level key constraint.
type Key struct {
	Type       KeyType
	Name       string
	Columns    []string
	References *Reference // KeyForeign only
}

// TableOption is a CREATE TABLE option. Value may be nil, a Keyword, a
// string, or a []string.
type TableOption struct {
	Keyword Keyword
	Value   any
}

// Schema is an ordered table definition.
type Schema struct {
	Name    string
	Columns []Column
	Keys    []Key
	Options []TableOption
}

// NewSchema creates an empty schema for the named table.
func NewSchema(name string) *Schema {
	return &Schema{Name: name}
}

// AddColumn appends a column, replacing any existing column with the same
// name in place.
func (s *Schema) AddColumn(name string, opts ColumnOptions) *Schema {
	for i := range s.Columns {
		if s.Columns[i].Name == name {
			s.Columns[i].Options = opts
			return s
		}
	}
	s.Columns = append(s.Columns, Column{Name: name, Options: opts})
	return s
}

// Column returns the named column.
func (s *Schema) Column(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnNames returns column names in declaration order.
func (s *Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// AddKey appends a table key.
func (s *Schema) AddKey(k Key) *Schema {
	s.Keys = append(s.Keys, k)
	return s
}

// AddOption appends a table option.
func (s *Schema) AddOption(kw Keyword, value any) *Schema {
	s.Options = append(s.Options, TableOption{Keyword: kw, Value: value})
	return s
}
