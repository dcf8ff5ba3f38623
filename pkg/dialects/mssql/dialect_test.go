package mssql

import (
	"testing"

	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/leapstack-labs/sqlrender/pkg/dialect"
	"github.com/leapstack-labs/sqlrender/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		query *query.Query
		want  string
	}{
		{
			name:  "bracket quoting",
			query: query.Select("dbo.users", "id"),
			want:  "SELECT [id] FROM [dbo].[users]",
		},
		{
			name:  "limit with offset",
			query: query.Select("users").OrderBy("id", core.Asc).Limit(10, 20),
			want:  "SELECT * FROM [users] ORDER BY [id] ASC OFFSET 20 ROWS FETCH NEXT 10 ROWS ONLY",
		},
		{
			name:  "limit only",
			query: query.Select("users").OrderBy("id", core.Asc).Limit(5, 0),
			want:  "SELECT * FROM [users] ORDER BY [id] ASC OFFSET 0 ROWS FETCH NEXT 5 ROWS ONLY",
		},
		{
			name: "create table",
			query: query.CreateTable(core.NewSchema("users").
				AddColumn("id", core.ColumnOptions{Type: "int", Primary: true, AutoIncrement: true}).
				AddColumn("name", core.ColumnOptions{Type: "varchar"}).
				AddColumn("bio", core.ColumnOptions{Type: "text", Nullable: core.Bool(true)}).
				AddColumn("active", core.ColumnOptions{Type: "boolean", Default: core.DefaultValue(false)}).
				AddColumn("token", core.ColumnOptions{Type: "uuid"})),
			want: "CREATE TABLE [users] (\n" +
				"[id] int NOT NULL IDENTITY(1,1),\n" +
				"[name] nvarchar(255) NOT NULL,\n" +
				"[bio] nvarchar(max) NULL,\n" +
				"[active] bit NOT NULL DEFAULT 0,\n" +
				"[token] uniqueidentifier NOT NULL\n" +
				")",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _, err := MSSQL.Render(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sql)
		})
	}
}

func TestUnsupportedSymbols(t *testing.T) {
	assert.Equal(t, core.PlaceholderAtP, MSSQL.Placeholder)

	_, _, err := MSSQL.Render(query.Select("users").Lock(query.LockForUpdate))
	require.ErrorIs(t, err, dialect.ErrUnknownSymbol)

	_, _, err = MSSQL.Render(query.Select("users").Where(query.Regexp("name", "^a")))
	require.ErrorIs(t, err, dialect.ErrUnknownSymbol)
}
