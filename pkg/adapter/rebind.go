package adapter

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/sqlrender/pkg/core"
)

// Rebind rewrites the ? placeholders of rendered SQL into the given style.
// Question marks inside string literals or quoted identifiers are left alone.
func Rebind(style core.PlaceholderStyle, sql string) string {
	if style == core.PlaceholderQuestion || !strings.Contains(sql, "?") {
		return sql
	}

	var b strings.Builder
	b.Grow(len(sql) + 8)

	n := 0
	var quote rune // closing rune of the quoted section we are in, 0 outside
	for _, r := range sql {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"' || r == '`':
			quote = r
		case r == '[':
			quote = ']'
		case r == '?':
			n++
			switch style {
			case core.PlaceholderDollar:
				b.WriteString("$" + strconv.Itoa(n))
			case core.PlaceholderAtP:
				b.WriteString("@p" + strconv.Itoa(n))
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
