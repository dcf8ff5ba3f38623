package ansi

import (
	"testing"

	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/leapstack-labs/sqlrender/pkg/dialect"
	"github.com/leapstack-labs/sqlrender/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaselineCoversEveryStatement(t *testing.T) {
	assert.Equal(t, core.AllQueryKinds(), ANSI.SupportedStatements())
}

func TestBaseIsReusable(t *testing.T) {
	d := dialect.NewDialect("custom").
		Apply(Base).
		Keywords(map[core.Keyword]string{core.NotNull: "NOT NULL /* required */"}).
		Build()

	kw, err := d.Keyword(core.NotNull)
	require.NoError(t, err)
	assert.Equal(t, "NOT NULL /* required */", kw)

	kw, err = ANSI.Keyword(core.NotNull)
	require.NoError(t, err)
	assert.Equal(t, "NOT NULL", kw)
	assert.Equal(t, len(Keywords), len(d.Keywords()))
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		query *query.Query
		want  string
	}{
		{"select", query.Select("users"), `SELECT * FROM "users"`},
		{"truncate", query.Truncate("logs"), `TRUNCATE TABLE "logs"`},
		{"drop table cascade", query.DropTable("logs").Attr("action", core.Cascade), `DROP TABLE IF EXISTS "logs" CASCADE`},
		{"drop index", query.DropIndex("logs", "logs_at_idx"), `DROP INDEX IF EXISTS "logs_at_idx"`},
		{"create index", query.CreateIndex("logs", "logs_at_idx", "at", "level"), `CREATE INDEX "logs_at_idx" ON "logs" ("at", "level")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _, err := ANSI.Render(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sql)
		})
	}
}
