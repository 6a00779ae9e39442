package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aevon-lab/contact-ledger/internal/normalize"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config represents the top-level configuration of the ledger.
type Config struct {
	Database    DatabaseConfig    `koanf:"database"`
	Sources     map[string]string `koanf:"sources"` // platform -> JSONL path; "" disables
	Ingestion   IngestionConfig   `koanf:"ingestion"`
	Export      ExportConfig      `koanf:"export"`
	Aggregation AggregationConfig `koanf:"aggregation"`
	Server      ServerConfig      `koanf:"server"`
	Log         LogConfig         `koanf:"log"`
}

type DatabaseConfig struct {
	Driver       string `koanf:"driver"` // sqlite | postgres | memory
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
}

type IngestionConfig struct {
	MaxBodySizeMB int `koanf:"max_body_size_mb"` // limit for HTTP batch imports
}

type ExportConfig struct {
	Path string `koanf:"path"`
}

type AggregationConfig struct {
	WorkerCount int `koanf:"worker_count"`
}

type ServerConfig struct {
	Port int    `koanf:"port"`
	Host string `koanf:"host"`
	Mode string `koanf:"mode"` // debug | release

	// RefreshInterval re-runs the pipeline while serving; 0 disables.
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug | info | warn | error
	Format string `koanf:"format"` // text | json
}

// Source is one configured input file.
type Source struct {
	Platform string
	Path     string
}

// SlogLevel parses Level. Validate guarantees it parses.
func (c LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// EnabledSources returns the configured sources in canonical platform order.
// Ingestion order fixes insertion sequence, so it must not depend on map iteration.
func (c *Config) EnabledSources() []Source {
	var out []Source
	for _, p := range normalize.Platforms() {
		path := strings.TrimSpace(c.Sources[string(p)])
		if path == "" {
			continue
		}
		out = append(out, Source{Platform: string(p), Path: path})
	}
	return out
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required for driver %q", c.Database.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported database.driver %q", c.Database.Driver)
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be > 0")
	}
	if c.Database.MaxIdleConns <= 0 {
		return fmt.Errorf("database.max_idle_conns must be > 0")
	}

	registry := normalize.DefaultRegistry()
	for key := range c.Sources {
		if !registry.Supports(key) {
			return fmt.Errorf("invalid sources.%s: %w", key, normalize.ErrUnknownPlatform)
		}
	}
	if len(c.EnabledSources()) == 0 {
		return fmt.Errorf("at least one source path is required")
	}

	if c.Ingestion.MaxBodySizeMB <= 0 {
		return fmt.Errorf("ingestion.max_body_size_mb must be > 0")
	}

	if strings.TrimSpace(c.Export.Path) == "" {
		return fmt.Errorf("export.path is required")
	}

	if c.Aggregation.WorkerCount <= 0 {
		return fmt.Errorf("aggregation.worker_count must be > 0")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}
	if c.Server.RefreshInterval < 0 {
		return fmt.Errorf("invalid server.refresh_interval %s (must be >= 0)", c.Server.RefreshInterval)
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log.format %q (must be text or json)", c.Log.Format)
	}

	return nil
}

// Load builds the config from defaults, the optional YAML file at configPath and
// LEDGER_ environment variables, then validates it. An empty configPath skips the file.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"database.driver":            DriverSQLite,
		"database.dsn":               "contacts.db",
		"database.max_open_conns":    10,
		"database.max_idle_conns":    10,
		"database.auto_migrate":      true,
		"sources.heyreach":           "mock/heyreach.jsonl",
		"sources.salesforge":         "mock/salesforge.jsonl",
		"sources.instantly":          "mock/instantly.jsonl",
		"ingestion.max_body_size_mb": 10,
		"export.path":                "unified.csv",
		"aggregation.worker_count":   4,
		"server.port":                8080,
		"server.host":                "0.0.0.0",
		"server.mode":                "release",
		"server.refresh_interval":    time.Duration(0),
		"log.level":                  "info",
		"log.format":                 "text",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// LEDGER_DATABASE__DRIVER=postgres overrides database.driver
	if err := k.Load(env.Provider("LEDGER_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "LEDGER_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
