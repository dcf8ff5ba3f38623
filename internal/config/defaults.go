package config

// Output formats.
const (
	OutputAuto     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	OutputText     = "text"
	OutputJSON     = "json"
	OutputMarkdown = "markdown"
)

// Default configuration values.
const (
	DefaultDialect = "ansi"
	DefaultOutput  = OutputAuto
	DefaultWorkers = 4
)

// defaultPorts holds the network port used when a target leaves it unset.
var defaultPorts = map[string]int{
	"postgres": 5432,
	"mysql":    3306,
	"mssql":    1433,
}

// ApplyDefaults fills values left unset by every configuration layer.
// A missing dialect follows the target type.
func (c *Config) ApplyDefaults() {
	if c.Target != nil {
		c.Target.ApplyDefaults()
	}

	if c.Dialect == "" {
		c.Dialect = DefaultDialect
		if c.Target != nil && c.Target.Type != "" {
			c.Dialect = c.Target.Type
		}
	}
	if c.OutputFormat == "" {
		c.OutputFormat = DefaultOutput
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
}

// ApplyDefaults applies default values based on the target type.
func (t *TargetConfig) ApplyDefaults() {
	if t.Port == 0 {
		t.Port = defaultPorts[t.Type]
	}
	if t.Database == "" && (t.Type == "duckdb" || t.Type == "sqlite") {
		t.Database = ":memory:"
	}
}
