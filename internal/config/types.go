// Package config loads sqlrender configuration from defaults, a
// sqlrender.yaml file, SQLRENDER_ environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlrender/pkg/adapter"
	"github.com/leapstack-labs/sqlrender/pkg/dialect"
)

// TargetConfig holds database target configuration.
type TargetConfig struct {
	Type string `koanf:"type"` // duckdb, postgres, sqlite, mysql, mssql

	// File-based databases (DuckDB, SQLite)
	Database string `koanf:"database"` // file path or database name

	// Network databases
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`

	// Additional driver-specific options
	Options map[string]string `koanf:"options"`

	// Params holds adapter-specific configuration (e.g., DuckDB extensions, secrets, settings)
	Params map[string]any `koanf:"params"`
}

// ToAdapterConfig converts the target into the adapter connection config.
func (t *TargetConfig) ToAdapterConfig() adapter.Config {
	return adapter.Config{
		Type:     strings.ToLower(t.Type),
		Path:     t.Database,
		Host:     t.Host,
		Port:     t.Port,
		Database: t.Database,
		Username: t.User,
		Password: t.Password,
		Options:  t.Options,
		Params:   t.Params,
	}
}

// Validate checks if the target configuration is valid.
// It uses the adapter registry to determine which adapter types are available.
func (t *TargetConfig) Validate() error {
	if t.Type == "" {
		return fmt.Errorf("target type is required")
	}

	_, err := adapter.Lookup(t.Type)
	return err
}

// Config holds all sqlrender configuration options.
type Config struct {
	Dialect      string        `koanf:"dialect"`
	Verbose      bool          `koanf:"verbose"`
	OutputFormat string        `koanf:"output"`
	Workers      int           `koanf:"workers"`
	Target       *TargetConfig `koanf:"target"`
}

// Validate checks that the configured dialect is registered and the output
// format is known. The target is validated only by commands that connect.
func (c *Config) Validate() error {
	if _, err := dialect.Lookup(c.Dialect); err != nil {
		return err
	}

	switch c.OutputFormat {
	case OutputAuto, OutputText, OutputJSON, OutputMarkdown:
	default:
		return fmt.Errorf("unknown output format %q (want auto, text, json or markdown)", c.OutputFormat)
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// ResolveDialect returns the configured dialect from the registry.
func (c *Config) ResolveDialect() (*dialect.Dialect, error) {
	return dialect.Lookup(c.Dialect)
}
