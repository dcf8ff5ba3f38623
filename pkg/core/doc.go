// Package core defines the shared language of the sqlrender system.
//
// This package contains:
//   - Closed symbol sets (Keyword, Clause, QueryKind)
//   - Schema definitions (Schema, ColumnOptions, Key, TableOption)
//   - Dialect configuration data (IdentifierConfig, PlaceholderStyle)
//   - Adapter configuration (AdapterConfig)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
