package core

// PlaceholderStyle defines how query parameters are formatted.
type PlaceholderStyle int

const (
	// PlaceholderQuestion uses ? for all parameters (DuckDB, MySQL, SQLite).
	PlaceholderQuestion PlaceholderStyle = iota
	// PlaceholderDollar uses $1, $2, etc. for parameters (PostgreSQL).
	PlaceholderDollar
	// PlaceholderAtP uses @p1, @p2, etc. for parameters (SQL Server).
	PlaceholderAtP
)

// String returns the string representation of PlaceholderStyle.
func (s PlaceholderStyle) String() string {
	switch s {
	case PlaceholderQuestion:
		return "question"
	case PlaceholderDollar:
		return "dollar"
	case PlaceholderAtP:
		return "at-p"
	default:
		return "unknown"
	}
}

// IdentifierConfig defines how identifiers are quoted.
type IdentifierConfig struct {
	Quote    string // Quote character: ", `, [
	QuoteEnd string // End quote character (usually same as Quote, ] for [)
	Escape   string // Escape sequence for QuoteEnd inside a name: "", ``, ]]
}
