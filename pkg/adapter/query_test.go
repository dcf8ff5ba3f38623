package adapter

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlrender/pkg/dialect"
	"github.com/leapstack-labs/sqlrender/pkg/dialects/postgres"
	"github.com/leapstack-labs/sqlrender/pkg/query"
)

// mockAdapter runs statements against a sqlmock connection.
type mockAdapter struct {
	BaseSQLAdapter
	d *dialect.Dialect
}

func (m *mockAdapter) Connect(_ context.Context, _ Config) error { return nil }

func (m *mockAdapter) GetTableMetadata(ctx context.Context, table string) (*Metadata, error) {
	return m.GetTableMetadataCommon(ctx, table, "public", m.d)
}

func (m *mockAdapter) LoadCSV(ctx context.Context, tableName, filePath string) error {
	return m.LoadCSVCommon(ctx, tableName, filePath, m.d)
}

func (m *mockAdapter) Dialect() *dialect.Dialect { return m.d }

func newMockAdapter(t *testing.T, d *dialect.Dialect) (*mockAdapter, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &mockAdapter{BaseSQLAdapter: BaseSQLAdapter{DB: db}, d: d}, mock
}

func TestRenderRebinds(t *testing.T) {
	q := query.Update("users").Set("name", "alice").Where(query.Eq("id", 7))

	sqlStr, params, err := Render(postgres.Postgres, q)
	require.NoError(t, err)
	assert.Equal(t, `UPDATE "users" SET "name" = $1 WHERE "id" = $2`, sqlStr)
	assert.Equal(t, []any{"alice", 7}, params)
}

func TestRenderError(t *testing.T) {
	sqlStr, params, err := Render(postgres.Postgres, query.New(0, "users"))
	require.ErrorIs(t, err, dialect.ErrUnsupportedStatement)
	assert.Empty(t, sqlStr)
	assert.Nil(t, params)
}

func TestExecQuery(t *testing.T) {
	a, mock := newMockAdapter(t, postgres.Postgres)
	mock.ExpectExec(`DELETE FROM "sessions" WHERE "expired" = \$1`).
		WithArgs(true).
		WillReturnResult(sqlmock.NewResult(0, 3))

	err := ExecQuery(context.Background(), a, query.Delete("sessions").Where(query.Eq("expired", true)))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryRows(t *testing.T) {
	a, mock := newMockAdapter(t, postgres.Postgres)
	mock.ExpectQuery(`SELECT "id" FROM "users" WHERE "age" BETWEEN \$1 AND \$2`).
		WithArgs(18, 65).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

	rows, err := QueryRows(context.Background(), a, query.Select("users", "id").Where(query.Between("age", 18, 65)))
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	var ids []int
	for rows.Next() {
		var id int
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []int{1, 2}, ids)
}
