package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnOptionsMerge(t *testing.T) {
	base := ColumnOptions{Type: "varchar", Length: 255, Nullable: Bool(true), Default: DefaultValue("")}

	t.Run("explicit fields win", func(t *testing.T) {
		got := ColumnOptions{Type: "varchar", Length: 50, Nullable: Bool(false)}.Merge(base)
		assert.Equal(t, 50, got.Length)
		assert.False(t, got.IsNullable())
		assert.Equal(t, "", got.Default.Value)
	})

	t.Run("unset fields come from base", func(t *testing.T) {
		got := ColumnOptions{Type: "varchar"}.Merge(base)
		assert.Equal(t, 255, got.Length)
		assert.True(t, got.IsNullable())
	})

	t.Run("explicit null default is kept", func(t *testing.T) {
		got := ColumnOptions{Default: DefaultNull()}.Merge(base)
		if assert.NotNil(t, got.Default) {
			assert.Nil(t, got.Default.Value)
		}
	})
}

func TestSchemaColumnOrder(t *testing.T) {
	s := NewSchema("users").
		AddColumn("id", ColumnOptions{Type: "int"}).
		AddColumn("name", ColumnOptions{Type: "varchar"}).
		AddColumn("id", ColumnOptions{Type: "bigint"})

	assert.Equal(t, []string{"id", "name"}, s.ColumnNames())

	col, ok := s.Column("id")
	assert.True(t, ok)
	assert.Equal(t, "bigint", col.Options.Type)

	_, ok = s.Column("missing")
	assert.False(t, ok)
}

func TestKeyTypeString(t *testing.T) {
	assert.Equal(t, "primary", KeyPrimary.String())
	assert.Equal(t, "unique", KeyUnique.String())
	assert.Equal(t, "foreign", KeyForeign.String())
	assert.Equal(t, "unknown", KeyType(9).String())
}
