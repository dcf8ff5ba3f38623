// Package dialect renders abstract queries and schemas into the SQL text of
// one database backend.
//
// A Dialect owns three symbol tables: keywords, clauses and statement
// templates. Concrete dialects are composed in pkg/dialects/*/ packages by
// layering a backend delta over the ANSI baseline, and register themselves
// here from their init() functions.
package dialect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/leapstack-labs/sqlrender/pkg/types"
)

// DataType is a logical column type resolved by a TypeResolver.
type DataType = core.DataType

// TypeResolver resolves a column's declared type name.
type TypeResolver = core.TypeResolver

// Dialect is the complete set of keyword, clause and statement mappings for
// one backend. It is immutable once built and safe for concurrent use.
type Dialect struct {
	Name        string
	Identifiers core.IdentifierConfig
	Placeholder core.PlaceholderStyle

	keywords   *Table[core.Keyword, string]
	clauses    *Table[core.Clause, string]
	statements *Table[core.QueryKind, Statement]

	typeAliases map[string]string // canonical token -> backend token
	boolTrue    string
	boolFalse   string
	optionSep   string
	types       TypeResolver
}

// Keyword returns the backend text of k.
func (d *Dialect) Keyword(k core.Keyword) (string, error) {
	s, err := d.keywords.Lookup(k)
	return s, d.annotate(err)
}

// Clause returns the format string of c.
func (d *Dialect) Clause(c core.Clause) (string, error) {
	s, err := d.clauses.Lookup(c)
	return s, d.annotate(err)
}

// FormatClause looks up c and applies its format to args.
func (d *Dialect) FormatClause(c core.Clause, args ...string) (string, error) {
	format, err := d.Clause(c)
	if err != nil {
		return "", err
	}
	return sprintf(format, args...), nil
}

// Statement returns the template registered for kind.
func (d *Dialect) Statement(kind core.QueryKind) (Statement, error) {
	s, err := d.statements.Lookup(kind)
	return s, d.annotate(err)
}

// HasKeyword reports whether k is registered.
func (d *Dialect) HasKeyword(k core.Keyword) bool {
	return d.keywords.Has(k)
}

// HasClause reports whether c is registered.
func (d *Dialect) HasClause(c core.Clause) bool {
	return d.clauses.Has(c)
}

// Supports reports whether the dialect has a template for kind.
func (d *Dialect) Supports(kind core.QueryKind) bool {
	return d.statements.Has(kind)
}

// Keywords returns every registered keyword.
func (d *Dialect) Keywords() []core.Keyword {
	return d.keywords.Keys()
}

// Clauses returns every registered clause.
func (d *Dialect) Clauses() []core.Clause {
	return d.clauses.Keys()
}

// SupportedStatements returns the query kinds with a registered template.
func (d *Dialect) SupportedStatements() []core.QueryKind {
	return d.statements.Keys()
}

// Types returns the resolver used for column types.
func (d *Dialect) Types() TypeResolver {
	return d.types
}

// WithTypes returns a copy of the dialect that resolves column types
// through r. The symbol tables are shared.
func (d *Dialect) WithTypes(r TypeResolver) *Dialect {
	cp := *d
	cp.types = r
	return &cp
}

// FormatPlaceholder returns a placeholder for the given parameter index (1-based).
func (d *Dialect) FormatPlaceholder(index int) string {
	switch d.Placeholder {
	case core.PlaceholderDollar:
		return "$" + strconv.Itoa(index)
	case core.PlaceholderAtP:
		return "@p" + strconv.Itoa(index)
	default: // PlaceholderQuestion
		return "?"
	}
}

// QuoteIdentifier quotes a single identifier using the dialect's quote characters.
func (d *Dialect) QuoteIdentifier(name string) string {
	// Escape any existing quote end characters in the name (e.g., ] -> ]])
	escaped := strings.ReplaceAll(name, d.Identifiers.QuoteEnd, d.Identifiers.Escape)
	return d.Identifiers.Quote + escaped + d.Identifiers.QuoteEnd
}

// Quote quotes a possibly qualified name part by part. A "*" part is left
// bare, so "u.*" renders as "u".*.
func (d *Dialect) Quote(name string) string {
	if name == "*" {
		return name
	}
	parts := strings.Split(name, ".")
	for i, p := range parts {
		if p != "*" {
			parts[i] = d.QuoteIdentifier(p)
		}
	}
	return strings.Join(parts, ".")
}

// quoteList quotes each name and joins them with ", ".
func (d *Dialect) quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = d.Quote(n)
	}
	return strings.Join(quoted, ", ")
}

// typeToken returns the backend spelling of a resolved type.
func (d *Dialect) typeToken(dt DataType) string {
	token := dt.SQLToken()
	if alias, ok := d.typeAliases[token]; ok {
		return alias
	}
	return token
}

// annotate stamps the dialect name on lookup errors.
func (d *Dialect) annotate(err error) error {
	var de *Error
	if err == nil || !errors.As(err, &de) || de.Dialect != "" {
		return err
	}
	cp := *de
	cp.Dialect = d.Name
	return &cp
}

func sprintf(format string, args ...string) string {
	vals := make([]any, len(args))
	for i, a := range args {
		vals[i] = a
	}
	return fmt.Sprintf(format, vals...)
}

// Builder provides a fluent API for constructing dialects.
//
// Initializers run in the order they are applied, and every registration
// replaces what an earlier one stored for the same symbol. A backend is
// therefore its baseline followed by its delta:
//
//	dialect.NewDialect("postgres").
//		Apply(ansi.Base).
//		Keywords(map[core.Keyword]string{core.ForUpdateLock: "FOR UPDATE"}).
//		Build()
type Builder struct {
	dialect *Dialect
}

// NewDialect creates a new dialect builder with the given name.
func NewDialect(name string) *Builder {
	return &Builder{
		dialect: &Dialect{
			Name: name,
			Identifiers: core.IdentifierConfig{
				Quote:    `"`,
				QuoteEnd: `"`,
				Escape:   `""`,
			},
			Placeholder: core.PlaceholderQuestion,
			keywords:    NewTable[core.Keyword, string](UnknownSymbol),
			clauses:     NewTable[core.Clause, string](UnknownSymbol),
			statements:  NewTable[core.QueryKind, Statement](UnsupportedStatement),
			typeAliases: make(map[string]string),
			boolTrue:    "TRUE",
			boolFalse:   "FALSE",
			optionSep:   " ",
		},
	}
}

// Apply runs an initializer against the builder.
func (b *Builder) Apply(init func(*Builder)) *Builder {
	init(b)
	return b
}

// Keywords registers keyword text, replacing existing entries.
func (b *Builder) Keywords(m map[core.Keyword]string) *Builder {
	b.dialect.keywords.AddMany(m)
	return b
}

// Clauses registers clause formats, replacing existing entries.
func (b *Builder) Clauses(m map[core.Clause]string) *Builder {
	b.dialect.clauses.AddMany(m)
	return b
}

// Statements registers statement templates, replacing existing entries.
func (b *Builder) Statements(m map[core.QueryKind]string) *Builder {
	for kind, tmpl := range m {
		b.dialect.statements.Register(kind, NewStatement(tmpl))
	}
	return b
}

// RemoveKeywords drops keywords the backend does not support.
func (b *Builder) RemoveKeywords(keys ...core.Keyword) *Builder {
	b.dialect.keywords.Remove(keys...)
	return b
}

// RemoveClauses drops clauses the backend does not support.
func (b *Builder) RemoveClauses(keys ...core.Clause) *Builder {
	b.dialect.clauses.Remove(keys...)
	return b
}

// RemoveStatements drops statement kinds the backend does not support.
func (b *Builder) RemoveStatements(kinds ...core.QueryKind) *Builder {
	b.dialect.statements.Remove(kinds...)
	return b
}

// Identifiers configures identifier quoting.
func (b *Builder) Identifiers(quote, quoteEnd, escape string) *Builder {
	b.dialect.Identifiers = core.IdentifierConfig{
		Quote:    quote,
		QuoteEnd: quoteEnd,
		Escape:   escape,
	}
	return b
}

// PlaceholderStyle sets how query parameters are formatted.
func (b *Builder) PlaceholderStyle(style core.PlaceholderStyle) *Builder {
	b.dialect.Placeholder = style
	return b
}

// TypeAliases maps canonical type tokens to the backend spelling.
func (b *Builder) TypeAliases(m map[string]string) *Builder {
	for k, v := range m {
		b.dialect.typeAliases[k] = v
	}
	return b
}

// BooleanLiterals sets how boolean defaults are written.
func (b *Builder) BooleanLiterals(t, f string) *Builder {
	b.dialect.boolTrue = t
	b.dialect.boolFalse = f
	return b
}

// TableOptionSeparator sets the text between CREATE TABLE options.
func (b *Builder) TableOptionSeparator(sep string) *Builder {
	b.dialect.optionSep = sep
	return b
}

// Types sets the column type resolver. Defaults to the built-in registry.
func (b *Builder) Types(r TypeResolver) *Builder {
	b.dialect.types = r
	return b
}

// Build returns the constructed dialect. The builder must not be used
// afterwards.
func (b *Builder) Build() *Dialect {
	d := b.dialect
	if d.types == nil {
		d.types = types.Default()
	}
	b.dialect = nil
	return d
}
