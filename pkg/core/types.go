package core

// DataType is a logical column type resolved by a TypeResolver.
type DataType interface {
	// SQLToken returns the canonical SQL type token, e.g. "int" or "varchar".
	SQLToken() string

	// DefaultOptions returns the options every column of this type starts from.
	DefaultOptions() ColumnOptions
}

// TypeResolver resolves a column's declared type name.
type TypeResolver interface {
	Resolve(name string) (DataType, error)
}
