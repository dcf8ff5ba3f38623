package adapter

import (
	"context"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"testing/fstest"

	"github.com/pressly/goose/v3"

	"github.com/leapstack-labs/sqlrender/pkg/dialect"
	"github.com/leapstack-labs/sqlrender/pkg/query"
)

// Migration is one versioned schema change. Up and Down are rendered with
// the adapter's dialect when the migration set is applied.
type Migration struct {
	Version int64
	Name    string
	Up      []*query.Query
	Down    []*query.Query
}

// gooseDialects maps dialect names to the goose dialect that tracks versions.
var gooseDialects = map[string]string{
	"postgres": "postgres",
	"mysql":    "mysql",
	"sqlite":   "sqlite3",
	"mssql":    "mssql",
}

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

// MigrationFS renders migrations into goose SQL files, one per version.
func MigrationFS(d *dialect.Dialect, migrations []Migration) (fs.FS, error) {
	fsys := fstest.MapFS{}
	for _, m := range migrations {
		up, err := renderMigrationBlock(d, m.Up)
		if err != nil {
			return nil, fmt.Errorf("migration %d up: %w", m.Version, err)
		}
		down, err := renderMigrationBlock(d, m.Down)
		if err != nil {
			return nil, fmt.Errorf("migration %d down: %w", m.Version, err)
		}

		var b strings.Builder
		b.WriteString("-- +goose Up\n")
		b.WriteString(up)
		b.WriteString("-- +goose Down\n")
		b.WriteString(down)

		name := fmt.Sprintf("%05d_%s.sql", m.Version, m.Name)
		fsys[name] = &fstest.MapFile{Data: []byte(b.String())}
	}
	return fsys, nil
}

func renderMigrationBlock(d *dialect.Dialect, queries []*query.Query) (string, error) {
	var b strings.Builder
	for _, q := range queries {
		sqlStr, params, err := Render(d, q)
		if err != nil {
			return "", err
		}
		if len(params) > 0 {
			return "", fmt.Errorf("%s statement binds %d parameters, migrations must be literal", q.Kind(), len(params))
		}
		b.WriteString("-- +goose StatementBegin\n")
		b.WriteString(sqlStr)
		b.WriteString(";\n-- +goose StatementEnd\n")
	}
	return b.String(), nil
}

// Migrate applies every pending migration through a's connection.
func Migrate(ctx context.Context, a Adapter, migrations []Migration) error {
	db := a.Conn()
	if db == nil {
		return ErrNotConnected
	}

	d := a.Dialect()
	gooseDialect, ok := gooseDialects[d.Name]
	if !ok {
		return fmt.Errorf("migrations are not supported for dialect %q", d.Name)
	}

	fsys, err := MigrationFS(d, migrations)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
