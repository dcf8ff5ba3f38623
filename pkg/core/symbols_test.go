package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordNamesAreComplete(t *testing.T) {
	seen := make(map[string]Keyword)
	for _, k := range AllKeywords() {
		name := k.String()
		require.NotEmpty(t, name, "keyword %d has no name", int(k))
		if prev, dup := seen[name]; dup {
			t.Errorf("keywords %d and %d share name %q", prev, k, name)
		}
		seen[name] = k

		parsed, ok := ParseKeyword(name)
		assert.True(t, ok)
		assert.Equal(t, k, parsed)
	}
	assert.Equal(t, "unknown", Keyword(-1).String())
	assert.Equal(t, "unknown", keywordCount.String())
}

func TestClauseNamesAreComplete(t *testing.T) {
	seen := make(map[string]Clause)
	for _, c := range AllClauses() {
		name := c.String()
		require.NotEmpty(t, name, "clause %d has no name", int(c))
		if prev, dup := seen[name]; dup {
			t.Errorf("clauses %d and %d share name %q", prev, c, name)
		}
		seen[name] = c

		parsed, ok := ParseClause(name)
		assert.True(t, ok)
		assert.Equal(t, c, parsed)
	}
}

func TestQueryKinds(t *testing.T) {
	want := []string{
		"select", "insert", "update", "delete", "truncate",
		"createTable", "createIndex", "dropTable", "dropIndex",
	}

	kinds := AllQueryKinds()
	require.Len(t, kinds, len(want))
	for i, k := range kinds {
		assert.Equal(t, want[i], k.String())
		parsed, ok := ParseQueryKind(want[i])
		assert.True(t, ok)
		assert.Equal(t, k, parsed)
	}

	_, ok := ParseQueryKind("merge")
	assert.False(t, ok)
}
