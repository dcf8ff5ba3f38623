package adapter

import (
	"context"
	"database/sql"

	"github.com/leapstack-labs/sqlrender/pkg/dialect"
	"github.com/leapstack-labs/sqlrender/pkg/query"
)

// Render renders q with d and rebinds its placeholders to d's style.
func Render(d *dialect.Dialect, q *query.Query) (string, []any, error) {
	sqlStr, params, err := d.Render(q)
	if err != nil {
		return "", nil, err
	}
	return Rebind(d.Placeholder, sqlStr), params, nil
}

// ExecQuery renders q for a and executes it.
func ExecQuery(ctx context.Context, a Adapter, q *query.Query) error {
	sqlStr, params, err := Render(a.Dialect(), q)
	if err != nil {
		return err
	}
	return a.Exec(ctx, sqlStr, params...)
}

// QueryRows renders q for a and runs it as a query.
func QueryRows(ctx context.Context, a Adapter, q *query.Query) (*sql.Rows, error) {
	sqlStr, params, err := Render(a.Dialect(), q)
	if err != nil {
		return nil, err
	}
	return a.Query(ctx, sqlStr, params...)
}
