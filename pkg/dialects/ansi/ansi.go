// Package ansi provides the base ANSI SQL dialect: the keywords, clauses and
// statement templates common to most SQL backends.
//
// Base is the first initializer of every backend dialect. A backend applies
// Base and then registers only the symbols that differ.
package ansi

import (
	"github.com/leapstack-labs/sqlrender/pkg/dialect"
)

func init() {
	dialect.Register(ANSI)
}

// ANSI is the baseline dialect on its own.
var ANSI = dialect.NewDialect("ansi").
	Apply(Base).
	Build()

// Base registers the ANSI baseline on b.
func Base(b *dialect.Builder) {
	b.Keywords(Keywords).
		Clauses(Clauses).
		Statements(Statements)
}
