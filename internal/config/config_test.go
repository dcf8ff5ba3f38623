package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlrender/pkg/adapter"
	_ "github.com/leapstack-labs/sqlrender/pkg/adapters/sqlite"
	"github.com/leapstack-labs/sqlrender/pkg/dialect"
	_ "github.com/leapstack-labs/sqlrender/pkg/dialects/ansi"
	_ "github.com/leapstack-labs/sqlrender/pkg/dialects/postgres"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("dialect", "", "")
	fs.StringP("output", "o", "", "")
	fs.BoolP("verbose", "v", false, "")
	fs.Int("workers", 0, "")
	fs.String("target", "", "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	res, err := Load("", nil)
	require.NoError(t, err)

	assert.Empty(t, res.File)
	assert.Equal(t, DefaultDialect, res.Dialect)
	assert.Equal(t, OutputAuto, res.OutputFormat)
	assert.Equal(t, DefaultWorkers, res.Workers)
	assert.False(t, res.Verbose)
	assert.Nil(t, res.Target)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
output: json
workers: 2
target:
  type: postgres
  host: db.internal
  user: app
  database: shop
  options:
    sslmode: disable
`)

	res, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, path, res.File)
	assert.Equal(t, "postgres", res.Dialect, "dialect follows the target type")
	assert.Equal(t, OutputJSON, res.OutputFormat)
	assert.Equal(t, 2, res.Workers)
	require.NotNil(t, res.Target)
	assert.Equal(t, "db.internal", res.Target.Host)
	assert.Equal(t, 5432, res.Target.Port)
	assert.Equal(t, map[string]string{"sslmode": "disable"}, res.Target.Options)
}

func TestLoad_SearchesUpward(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "dialect: postgres\n")

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)

	res, err := Load("", nil)
	require.NoError(t, err)

	// Resolve symlinks (macOS tmp dirs live under /private)
	want, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(res.File)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "postgres", res.Dialect)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
dialect: ansi
output: text
workers: 2
target:
  type: sqlite
`)

	t.Setenv("SQLRENDER_OUTPUT", "markdown")
	t.Setenv("SQLRENDER_WORKERS", "3")
	t.Setenv("SQLRENDER_TARGET__DATABASE", "/tmp/app.db")

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--workers", "8", "--dialect", "postgres"}))

	res, err := Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, "postgres", res.Dialect, "flag beats file")
	assert.Equal(t, OutputMarkdown, res.OutputFormat, "env beats file")
	assert.Equal(t, 8, res.Workers, "flag beats env")
	require.NotNil(t, res.Target)
	assert.Equal(t, "sqlite", res.Target.Type)
	assert.Equal(t, "/tmp/app.db", res.Target.Database)
}

func TestLoad_UnchangedFlagsDoNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "output: json\nworkers: 6\n")

	fs := newFlags()
	require.NoError(t, fs.Parse(nil))

	res, err := Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, OutputJSON, res.OutputFormat)
	assert.Equal(t, 6, res.Workers)
}

func TestLoad_TargetFlag(t *testing.T) {
	t.Chdir(t.TempDir())

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--target", "sqlite"}))

	res, err := Load("", fs)
	require.NoError(t, err)

	require.NotNil(t, res.Target)
	assert.Equal(t, "sqlite", res.Target.Type)
	assert.Equal(t, ":memory:", res.Target.Database)
	assert.Equal(t, "sqlite", res.Dialect)
}

func TestLoad_ExpandsTargetEnvVars(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
target:
  type: postgres
  host: ${SQLRENDER_TEST_HOST}
  password: ${SQLRENDER_TEST_PASSWORD}
  user: ${SQLRENDER_TEST_UNSET}
`)
	t.Setenv("SQLRENDER_TEST_HOST", "pg.local")
	t.Setenv("SQLRENDER_TEST_PASSWORD", "s3cret")

	res, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "pg.local", res.Target.Host)
	assert.Equal(t, "s3cret", res.Target.Password)
	assert.Equal(t, "${SQLRENDER_TEST_UNSET}", res.Target.User, "unset variables stay literal")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  Config{Dialect: "postgres", OutputFormat: OutputText, Workers: 1},
		},
		{
			name:    "missing dialect",
			cfg:     Config{OutputFormat: OutputText, Workers: 1},
			wantErr: "dialect is required",
		},
		{
			name:    "unknown dialect",
			cfg:     Config{Dialect: "oracle", OutputFormat: OutputText, Workers: 1},
			wantErr: "unknown dialect",
		},
		{
			name:    "unknown output",
			cfg:     Config{Dialect: "ansi", OutputFormat: "html", Workers: 1},
			wantErr: "unknown output format",
		},
		{
			name:    "no workers",
			cfg:     Config{Dialect: "ansi", OutputFormat: OutputAuto},
			wantErr: "workers must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_UnknownDialectErrorType(t *testing.T) {
	cfg := Config{Dialect: "oracle", OutputFormat: OutputText, Workers: 1}

	var unknown *dialect.UnknownDialectError
	require.ErrorAs(t, cfg.Validate(), &unknown)
	assert.Equal(t, "oracle", unknown.Name)
	assert.Contains(t, unknown.Available, "postgres")
}

func TestTargetConfig_Validate(t *testing.T) {
	assert.NoError(t, (&TargetConfig{Type: "SQLite"}).Validate())
	assert.EqualError(t, (&TargetConfig{}).Validate(), "target type is required")

	var unknown *adapter.UnknownAdapterError
	require.ErrorAs(t, (&TargetConfig{Type: "oracle"}).Validate(), &unknown)
	assert.Equal(t, "oracle", unknown.Name)
	assert.Contains(t, unknown.Available, "sqlite")
}

func TestTargetConfig_ToAdapterConfig(t *testing.T) {
	target := &TargetConfig{
		Type:     "Postgres",
		Database: "shop",
		Host:     "localhost",
		Port:     5433,
		User:     "app",
		Password: "pw",
		Options:  map[string]string{"sslmode": "disable"},
	}

	got := target.ToAdapterConfig()
	assert.Equal(t, "postgres", got.Type)
	assert.Equal(t, "shop", got.Database)
	assert.Equal(t, "shop", got.Path)
	assert.Equal(t, "app", got.Username)
	assert.Equal(t, 5433, got.Port)
	assert.Equal(t, "disable", got.Options["sslmode"])
}

func TestTargetConfig_ApplyDefaults(t *testing.T) {
	tests := []struct {
		typ      string
		port     int
		database string
	}{
		{"postgres", 5432, ""},
		{"mysql", 3306, ""},
		{"mssql", 1433, ""},
		{"duckdb", 0, ":memory:"},
		{"sqlite", 0, ":memory:"},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			target := &TargetConfig{Type: tt.typ}
			target.ApplyDefaults()
			assert.Equal(t, tt.port, target.Port)
			assert.Equal(t, tt.database, target.Database)
		})
	}

	kept := &TargetConfig{Type: "postgres", Port: 6543}
	kept.ApplyDefaults()
	assert.Equal(t, 6543, kept.Port)
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()

	fallback := FromContext(ctx)
	assert.Equal(t, DefaultDialect, fallback.Dialect)
	assert.NotNil(t, GetLogger(ctx))

	cfg := &Config{Dialect: "postgres"}
	ctx = WithConfig(ctx, cfg)
	assert.Same(t, cfg, FromContext(ctx))
}
