// Package mssql provides a Microsoft SQL Server database adapter for sqlrender.
//
// This file registers the SQL Server adapter with the adapter registry.
// Import this package with a blank identifier to register the adapter:
//
//	import _ "github.com/leapstack-labs/sqlrender/pkg/adapters/mssql"
package mssql

import (
	"log/slog"

	"github.com/leapstack-labs/sqlrender/pkg/adapter"
)

func init() {
	adapter.Register("mssql", func(logger *slog.Logger) adapter.Adapter { return New(logger) })
}
