// Package config loads teamlens settings from defaults, an optional YAML file
// and environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/teamlens/internal/kpi"
)

const (
	configPathEnv        = "TEAMLENS_CONFIG"
	dbPathEnv            = "TEAMLENS_DB"
	logModeEnv           = "TEAMLENS_LOG_MODE"
	logLevelEnv          = "TEAMLENS_LOG_LEVEL"
	benchmarkEnabledEnv  = "TEAMLENS_BENCHMARK_ENABLED"
	pageSizeEnv          = "TEAMLENS_PAGE_SIZE"
	regulatoryCourseEnv  = "TEAMLENS_REGULATORY_COURSE"
	defaultRegulatoryID  = "course-regulatory"
	defaultLogMode       = "dev"
	defaultLogLevel      = "warn"
	defaultPageSize      = 10
	defaultDBFile        = "teamlens.db"
	defaultDataDirectory = ".teamlens"
)

type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Benchmark BenchmarkConfig `yaml:"benchmark"`
	Table     TableConfig     `yaml:"table"`
	Debug     DebugConfig     `yaml:"debug"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Mode  string `yaml:"mode"`
	Level string `yaml:"level"`
}

// BenchmarkConfig holds the company reference values KPIs are compared to.
type BenchmarkConfig struct {
	Enabled *bool              `yaml:"enabled"`
	Values  map[string]float64 `yaml:"values"`
}

type TableConfig struct {
	PageSize int `yaml:"pageSize"`
}

// DebugConfig parameterises the corner-case transforms.
type DebugConfig struct {
	RegulatoryCourseID string `yaml:"regulatoryCourseId"`
}

// BenchmarksEnabled reports the effective benchmark toggle.
func (c Config) BenchmarksEnabled() bool {
	return c.Benchmark.Enabled == nil || *c.Benchmark.Enabled
}

// Benchmarks returns the configured values over the built-in defaults.
func (c Config) Benchmarks() kpi.Benchmarks {
	out := kpi.DefaultBenchmarks()
	for k, v := range c.Benchmark.Values {
		out[kpi.ID(k)] = v
	}
	return out
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Database: DatabaseConfig{Path: defaultDBPath()},
		Log:      LogConfig{Mode: defaultLogMode, Level: defaultLogLevel},
		Table:    TableConfig{PageSize: defaultPageSize},
		Debug:    DebugConfig{RegulatoryCourseID: defaultRegulatoryID},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultDBFile
	}
	return filepath.Join(home, defaultDataDirectory, defaultDBFile)
}

// Load reads the YAML file named by TEAMLENS_CONFIG (if set) and applies
// environment overrides. A missing or malformed file is an error; an unset
// variable is not.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(configPathEnv); path != "" {
		fileCfg, err := readFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = merge(cfg, fileCfg)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	for k := range fileCfg.Benchmark.Values {
		if !knownKPI(kpi.ID(k)) {
			return Config{}, fmt.Errorf("config %s: unknown benchmark %q", path, k)
		}
	}
	return fileCfg, nil
}

func knownKPI(id kpi.ID) bool {
	for _, k := range kpi.Order {
		if k == id {
			return true
		}
	}
	return false
}

func merge(base, override Config) Config {
	if override.Database.Path != "" {
		base.Database.Path = override.Database.Path
	}
	if override.Log.Mode != "" {
		base.Log.Mode = override.Log.Mode
	}
	if override.Log.Level != "" {
		base.Log.Level = override.Log.Level
	}
	if override.Benchmark.Enabled != nil {
		base.Benchmark.Enabled = override.Benchmark.Enabled
	}
	if len(override.Benchmark.Values) > 0 {
		base.Benchmark.Values = override.Benchmark.Values
	}
	if override.Table.PageSize > 0 {
		base.Table.PageSize = override.Table.PageSize
	}
	if override.Debug.RegulatoryCourseID != "" {
		base.Debug.RegulatoryCourseID = override.Debug.RegulatoryCourseID
	}
	return base
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(dbPathEnv); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(logModeEnv); v != "" {
		c.Log.Mode = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(benchmarkEnabledEnv); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", benchmarkEnabledEnv, err)
		}
		c.Benchmark.Enabled = &on
	}
	if v := os.Getenv(pageSizeEnv); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", pageSizeEnv, v)
		}
		c.Table.PageSize = n
	}
	if v := os.Getenv(regulatoryCourseEnv); v != "" {
		c.Debug.RegulatoryCourseID = v
	}
	return nil
}
