package types

import "github.com/leapstack-labs/sqlrender/pkg/core"

var builtin = newBuiltin()

// Default returns the shared registry of built-in types.
func Default() *Registry {
	return builtin
}

func newBuiltin() *Registry {
	r := NewRegistry()

	// Numeric
	r.Register("int", Type{Token: "int"})
	r.Register("bigint", Type{Token: "bigint"})
	r.Register("smallint", Type{Token: "smallint"})
	r.Register("tinyint", Type{Token: "tinyint"})
	r.Register("float", Type{Token: "float"})
	r.Register("double", Type{Token: "double"})
	r.Register("decimal", Type{Token: "decimal", Defaults: core.ColumnOptions{Length: 10, Scale: 2}})
	r.Register("boolean", Type{Token: "boolean"})

	// Character
	r.Register("char", Type{Token: "char", Defaults: core.ColumnOptions{Length: 1}})
	r.Register("varchar", Type{Token: "varchar", Defaults: core.ColumnOptions{Length: 255}})
	r.Register("text", Type{Token: "text"})

	// Temporal
	r.Register("date", Type{Token: "date"})
	r.Register("time", Type{Token: "time"})
	r.Register("datetime", Type{Token: "datetime"})
	r.Register("timestamp", Type{Token: "timestamp"})

	// Binary and structured
	r.Register("blob", Type{Token: "blob"})
	r.Register("binary", Type{Token: "binary"})
	r.Register("json", Type{Token: "json"})
	r.Register("uuid", Type{Token: "uuid"})

	r.Alias("integer", "int")
	r.Alias("bool", "boolean")
	r.Alias("string", "varchar")
	r.Alias("numeric", "decimal")
	r.Alias("real", "float")

	return r
}
