package sqlite

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlrender/pkg/adapter"
	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/leapstack-labs/sqlrender/pkg/query"
)

func connect(t *testing.T) *Adapter {
	t.Helper()
	adp := New(nil)
	require.NoError(t, adp.Connect(context.Background(), core.AdapterConfig{Path: ":memory:"}))
	t.Cleanup(func() { _ = adp.Close() })
	return adp
}

func librarySchemas() (*core.Schema, *core.Schema) {
	authors := core.NewSchema("authors").
		AddColumn("id", core.ColumnOptions{Type: "int", Primary: true}).
		AddColumn("name", core.ColumnOptions{Type: "varchar", Length: 100}).
		AddKey(core.Key{Type: core.KeyPrimary, Columns: []string{"id"}})

	books := core.NewSchema("books").
		AddColumn("id", core.ColumnOptions{Type: "int", Primary: true}).
		AddColumn("author_id", core.ColumnOptions{Type: "int"}).
		AddColumn("title", core.ColumnOptions{Type: "text"}).
		AddColumn("published", core.ColumnOptions{Type: "boolean", Default: core.DefaultValue(false)}).
		AddKey(core.Key{Type: core.KeyPrimary, Columns: []string{"id"}}).
		AddKey(core.Key{
			Type:    core.KeyForeign,
			Columns: []string{"author_id"},
			References: &core.Reference{
				Table:    "authors",
				Columns:  []string{"id"},
				OnDelete: core.Cascade,
			},
		})
	return authors, books
}

func countRows(t *testing.T, adp *Adapter, table string) int {
	t.Helper()
	rows, err := adapter.QueryRows(context.Background(), adp, query.Select(table).FieldExpr(query.Raw("COUNT(*)"), "n"))
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	var n int
	require.True(t, rows.Next())
	require.NoError(t, rows.Scan(&n))
	return n
}

func TestAdapter_RenderedRoundTrip(t *testing.T) {
	ctx := context.Background()
	adp := connect(t)
	authors, books := librarySchemas()

	require.NoError(t, adapter.ExecQuery(ctx, adp, query.CreateTable(authors)))
	require.NoError(t, adapter.ExecQuery(ctx, adp, query.CreateTable(books)))

	require.NoError(t, adapter.ExecQuery(ctx, adp, query.Insert("authors").Set("id", 1).Set("name", "Le Guin")))
	require.NoError(t, adapter.ExecQuery(ctx, adp, query.Insert("books").Set("id", 10).Set("author_id", 1).Set("title", "The Dispossessed")))
	require.NoError(t, adapter.ExecQuery(ctx, adp, query.Insert("books").Set("id", 11).Set("author_id", 1).Set("title", "It's Lathe")))

	rows, err := adapter.QueryRows(ctx, adp, query.Update("books").
		Set("published", true).
		Where(query.Like("title", "The %")).
		Returning("id"))
	require.NoError(t, err)
	var updated []int
	for rows.Next() {
		var id int
		require.NoError(t, rows.Scan(&id))
		updated = append(updated, id)
	}
	require.NoError(t, rows.Err())
	_ = rows.Close()
	assert.Equal(t, []int{10}, updated)

	rows, err = adapter.QueryRows(ctx, adp, query.Select("books", "title").
		InnerJoin("authors", query.On{Left: "books.author_id", Right: "authors.id"}).
		Where(query.Eq("authors.name", "Le Guin"), query.In("books.id", 10, 11)).
		OrderBy("books.id", core.Desc).
		Limit(1, 0))
	require.NoError(t, err)
	require.True(t, rows.Next())
	var title string
	require.NoError(t, rows.Scan(&title))
	_ = rows.Close()
	assert.Equal(t, "It's Lathe", title)

	require.NoError(t, adapter.ExecQuery(ctx, adp, query.Delete("authors").Where(query.Eq("id", 1))))
	assert.Equal(t, 0, countRows(t, adp, "books"), "foreign key should cascade the delete")
}

func TestAdapter_TruncateUnsupported(t *testing.T) {
	adp := connect(t)
	err := adapter.ExecQuery(context.Background(), adp, query.Truncate("books"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported statement "truncate"`)
}

func TestAdapter_GetTableMetadata(t *testing.T) {
	ctx := context.Background()
	adp := connect(t)
	authors, _ := librarySchemas()

	require.NoError(t, adapter.ExecQuery(ctx, adp, query.CreateTable(authors)))
	require.NoError(t, adapter.ExecQuery(ctx, adp, query.Insert("authors").Set("id", 1).Set("name", "Butler")))

	meta, err := adp.GetTableMetadata(ctx, "authors")
	require.NoError(t, err)
	assert.Equal(t, "main", meta.Schema)
	assert.Equal(t, int64(1), meta.RowCount)
	require.Len(t, meta.Columns, 2)
	assert.Equal(t, adapter.ColumnInfo{Name: "id", Type: "integer", Nullable: false, Position: 1}, meta.Columns[0])
	assert.Equal(t, "varchar(100)", meta.Columns[1].Type)

	_, err = adp.GetTableMetadata(ctx, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table missing not found")
}

func TestAdapter_GetTableMetadata_LowercasesDeclaredTypes(t *testing.T) {
	ctx := context.Background()
	adp := connect(t)

	_, err := adp.Conn().ExecContext(ctx, `CREATE TABLE shouting (ID INTEGER PRIMARY KEY, Note VARCHAR(20))`)
	require.NoError(t, err)

	meta, err := adp.GetTableMetadata(ctx, "shouting")
	require.NoError(t, err)
	require.Len(t, meta.Columns, 2)
	assert.Equal(t, "integer", meta.Columns[0].Type)
	assert.Equal(t, "varchar(20)", meta.Columns[1].Type)
}

func TestAdapter_RowCountFailureIsLogged(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var buf bytes.Buffer
	adp := New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	adp.DB = db

	mock.ExpectQuery(`COUNT\(\*\)`).WillReturnError(errors.New("disk I/O error"))

	assert.Equal(t, int64(0), adp.rowCount(context.Background(), "main", "books"))
	assert.Contains(t, buf.String(), "failed to count rows")
	assert.Contains(t, buf.String(), "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_LoadCSV(t *testing.T) {
	ctx := context.Background()
	adp := connect(t)

	csvPath := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("id,full name\n1,alice\n2,bob\n3,\"o'hara\"\n"), 0o600))

	require.NoError(t, adp.LoadCSV(ctx, "people", csvPath))
	assert.Equal(t, 3, countRows(t, adp, "people"))

	meta, err := adp.GetTableMetadata(ctx, "people")
	require.NoError(t, err)
	require.Len(t, meta.Columns, 2)
	assert.Equal(t, "full_name", meta.Columns[1].Name)
	assert.True(t, meta.Columns[1].Nullable)

	// Loading again replaces the table
	require.NoError(t, adp.LoadCSV(ctx, "people", csvPath))
	assert.Equal(t, 3, countRows(t, adp, "people"))
}

func TestAdapter_Migrate(t *testing.T) {
	ctx := context.Background()
	adp := connect(t)
	authors, books := librarySchemas()

	migrations := []adapter.Migration{
		{
			Version: 1,
			Name:    "authors",
			Up:      []*query.Query{query.CreateTable(authors)},
			Down:    []*query.Query{query.DropTable("authors")},
		},
		{
			Version: 2,
			Name:    "books",
			Up: []*query.Query{
				query.CreateTable(books),
				query.CreateIndex("books", "books_author_idx", "author_id"),
			},
			Down: []*query.Query{query.DropTable("books")},
		},
	}

	require.NoError(t, adapter.Migrate(ctx, adp, migrations))
	// Applied migrations are skipped
	require.NoError(t, adapter.Migrate(ctx, adp, migrations))

	meta, err := adp.GetTableMetadata(ctx, "books")
	require.NoError(t, err)
	assert.Len(t, meta.Columns, 4)
}

func TestAdapter_Registry(t *testing.T) {
	factory, ok := adapter.Get("sqlite")
	require.True(t, ok)

	adp, ok := factory(nil).(*Adapter)
	require.True(t, ok, "factory should return *Adapter")
	assert.Equal(t, "sqlite", adp.Dialect().Name)
	assert.False(t, adp.IsConnected())
}
