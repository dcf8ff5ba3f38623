package dialect

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/leapstack-labs/sqlrender/pkg/query"
)

// FormatColumns renders the column definitions of a CREATE TABLE
// statement, one column per line in declaration order. Any column whose
// type cannot be resolved fails the whole call.
func (d *Dialect) FormatColumns(schema *core.Schema) (string, error) {
	lines := make([]string, 0, len(schema.Columns))
	for _, col := range schema.Columns {
		line, err := d.FormatColumn(col)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, ",\n"), nil
}

// FormatColumn renders a single column definition.
func (d *Dialect) FormatColumn(col core.Column) (string, error) {
	dt, err := d.types.Resolve(col.Options.Type)
	if err != nil {
		return "", &Error{Kind: InvalidColumnType, Dialect: d.Name, Symbol: col.Name, Err: err}
	}
	opts := col.Options.Merge(dt.DefaultOptions())

	typ := d.typeToken(dt)
	switch {
	case opts.Length > 0 && opts.Scale > 0:
		typ += fmt.Sprintf("(%d,%d)", opts.Length, opts.Scale)
	case opts.Length > 0:
		typ += fmt.Sprintf("(%d)", opts.Length)
	}

	out := []string{d.QuoteIdentifier(col.Name), typ}

	if opts.Collate != "" {
		s, err := d.FormatClause(core.Collate, opts.Collate)
		if err != nil {
			return "", err
		}
		out = append(out, s)
	}

	if opts.Constraint != "" {
		s, err := d.FormatClause(core.Constraint, d.QuoteIdentifier(opts.Constraint))
		if err != nil {
			return "", err
		}
		out = append(out, s)
	}

	// Primary and unique columns can't be null, whatever Nullable says.
	null := core.NotNull
	if !opts.Primary && !opts.Unique && opts.IsNullable() {
		null = core.Null
	}
	s, err := d.Keyword(null)
	if err != nil {
		return "", err
	}
	out = append(out, s)

	if opts.Default != nil {
		s, err := d.FormatClause(core.DefaultTo, d.FormatValue(opts.Default.Value))
		if err != nil {
			return "", err
		}
		out = append(out, s)
	}

	if opts.AutoIncrement && d.HasKeyword(core.AutoIncrement) {
		s, _ := d.Keyword(core.AutoIncrement)
		out = append(out, s)
	}

	if opts.Comment != "" && d.HasClause(core.Comment) {
		s, _ := d.FormatClause(core.Comment, quoteString(opts.Comment))
		out = append(out, s)
	}

	return strings.TrimSpace(strings.Join(out, " ")), nil
}

// FormatValue renders v as a SQL literal.
func (d *Dialect) FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case query.Expr:
		return string(x)
	case string:
		return quoteString(x)
	case []byte:
		return quoteString(string(x))
	case bool:
		if x {
			return d.boolTrue
		}
		return d.boolFalse
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return quoteString(x.Format(time.DateTime))
	case fmt.Stringer:
		return quoteString(x.String())
	default:
		return quoteString(fmt.Sprint(x))
	}
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// formatKeys renders the table keys of a schema. Each key starts on its own
// line so the output can follow the last column directly.
func (d *Dialect) formatKeys(schema *core.Schema) (string, error) {
	var b strings.Builder
	for _, k := range schema.Keys {
		text, err := d.formatKey(schema.Name, k)
		if err != nil {
			return "", err
		}
		b.WriteString(",\n")
		b.WriteString(text)
	}
	return b.String(), nil
}

func (d *Dialect) formatKey(table string, k core.Key) (string, error) {
	cols := d.quoteList(k.Columns)

	switch k.Type {
	case core.KeyPrimary:
		text, err := d.FormatClause(core.PrimaryKey, cols)
		if err != nil || k.Name == "" {
			return text, err
		}
		prefix, err := d.FormatClause(core.Constraint, d.QuoteIdentifier(k.Name))
		if err != nil {
			return "", err
		}
		return prefix + " " + text, nil

	case core.KeyUnique:
		return d.FormatClause(core.UniqueKey, d.QuoteIdentifier(keyName(table, k, "key")), cols)

	case core.KeyForeign:
		ref := k.References
		if ref == nil {
			return "", fmt.Errorf("foreign key on %s has no reference", cols)
		}
		text, err := d.FormatClause(core.ForeignKey,
			d.QuoteIdentifier(keyName(table, k, "fkey")), cols, d.Quote(ref.Table), d.quoteList(ref.Columns))
		if err != nil {
			return "", err
		}
		out := []string{text}
		if ref.Match != core.KeywordInvalid {
			m, err := d.Keyword(ref.Match)
			if err != nil {
				return "", err
			}
			out = append(out, m)
		}
		for _, action := range []struct {
			clause core.Clause
			kw     core.Keyword
		}{{core.OnDelete, ref.OnDelete}, {core.OnUpdate, ref.OnUpdate}} {
			if action.kw == core.KeywordInvalid {
				continue
			}
			kw, err := d.Keyword(action.kw)
			if err != nil {
				return "", err
			}
			s, err := d.FormatClause(action.clause, kw)
			if err != nil {
				return "", err
			}
			out = append(out, s)
		}
		return strings.Join(out, " "), nil
	}
	return "", fmt.Errorf("unknown key type %s", k.Type)
}

// keyName returns the key's name, or table_col1_col2_suffix when unnamed.
func keyName(table string, k core.Key, suffix string) string {
	if k.Name != "" {
		return k.Name
	}
	parts := append([]string{table}, k.Columns...)
	return strings.Join(append(parts, suffix), "_")
}

// formatOptions renders CREATE TABLE options in declaration order.
func (d *Dialect) formatOptions(opts []core.TableOption) (string, error) {
	out := make([]string, 0, len(opts))
	for _, opt := range opts {
		text, err := d.Keyword(opt.Keyword)
		if err != nil {
			return "", err
		}
		switch v := opt.Value.(type) {
		case nil:
		case core.Keyword:
			s, err := d.Keyword(v)
			if err != nil {
				return "", err
			}
			text += " " + s
		case []string:
			text += " (" + d.quoteList(v) + ")"
		case string:
			text += " " + v
		default:
			text += " " + fmt.Sprint(v)
		}
		out = append(out, text)
	}
	return strings.Join(out, d.optionSep), nil
}
