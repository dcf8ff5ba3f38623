package query

import (
	"testing"

	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBuilder(t *testing.T) {
	q := Select("users", "id", "name").
		FieldExpr(Raw("COUNT(*)"), "total").
		Where(Eq("active", true), Or(IsNull("deleted_at"), Gt("age", 18))).
		GroupBy("id").
		OrderBy("name", core.Desc).
		Limit(10, 20).
		Lock(LockForUpdate)

	assert.Equal(t, core.Select, q.Kind())
	assert.Equal(t, "users", q.Table())
	require.Len(t, q.GetFields(), 3)
	assert.Equal(t, Expr("COUNT(*)"), q.GetFields()[2].Expr)
	assert.Equal(t, "total", q.GetFields()[2].Alias)

	where := q.GetWhere()
	require.NotNil(t, where)
	assert.Equal(t, core.And, where.Conjunction)
	require.Len(t, where.Items, 2)
	nested, ok := where.Items[1].(*Predicate)
	require.True(t, ok)
	assert.Equal(t, core.Or, nested.Conjunction)

	limit, offset := q.GetLimit()
	assert.Equal(t, 10, limit)
	assert.Equal(t, 20, offset)
	assert.Equal(t, LockForUpdate, q.GetLock())
	assert.True(t, q.GetHaving().Empty())
}

func TestConditionValues(t *testing.T) {
	tests := []struct {
		name string
		cond *Condition
		op   core.Clause
		val  any
	}{
		{"in", In("id", 1, 2, 3), core.In, []any{1, 2, 3}},
		{"between", Between("age", 18, 65), core.Between, []any{18, 65}},
		{"is null", IsNull("deleted_at"), core.IsNull, nil},
		{"regexp", Regexp("name", "^a"), core.Regexp, "^a"},
		{"not equals", Ne("status", "x"), core.NotEquals, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.op, tt.cond.Op)
			assert.Equal(t, tt.val, tt.cond.Value)
		})
	}
}

func TestAttributes(t *testing.T) {
	q := Truncate("logs").Attr("only", core.Only).Attr("identity", core.RestartIdentity)

	kw, ok := q.Attribute("only")
	assert.True(t, ok)
	assert.Equal(t, core.Only, kw)

	_, ok = q.Attribute("action")
	assert.False(t, ok)
}

func TestCreateTableUsesSchemaName(t *testing.T) {
	s := core.NewSchema("accounts").AddColumn("id", core.ColumnOptions{Type: "int"})
	q := CreateTable(s)

	assert.Equal(t, core.CreateTable, q.Kind())
	assert.Equal(t, "accounts", q.Table())
	assert.Same(t, s, q.Schema())
}

func TestLockModeString(t *testing.T) {
	assert.Equal(t, "none", LockNone.String())
	assert.Equal(t, "update", LockForUpdate.String())
	assert.Equal(t, "share", LockForShare.String())
	assert.Equal(t, "unknown", LockMode(7).String())
}
