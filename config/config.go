// Package config loads a dataset project description from YAML, with
// environment-variable overrides. A project names the index source, how the
// initial View is grouped, and how folds are produced from it.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// SourceDSV reads the index from a delimiter-separated file
	SourceDSV = "dsv"
	// SourceJSONL reads the index from a file of JSON objects, one per line
	SourceJSONL = "jsonl"
	// SourceFiles builds the index from the paths matching a glob
	SourceFiles = "files"
)

// Config is the top-level project configuration.
type Config struct {
	Name     string      `yaml:"name"`
	LogLevel string      `yaml:"logLevel"`
	GroupBy  []string    `yaml:"groupBy"`
	Index    IndexConfig `yaml:"index"`
	Folds    FoldsConfig `yaml:"folds"`
}

// IndexConfig describes where the index comes from.
type IndexConfig struct {
	Source           string   `yaml:"source"`
	Path             string   `yaml:"path"`
	Columns          []string `yaml:"columns"`
	Paths            []string `yaml:"paths"`
	Delimiter        string   `yaml:"delimiter"`
	Comment          string   `yaml:"comment"`
	HeaderLines      int      `yaml:"headerLines"`
	TrimSpace        bool     `yaml:"trimSpace"`
	NilValue         string   `yaml:"nilValue"`
	Pattern          string   `yaml:"pattern"`
	PathColumn       string   `yaml:"pathColumn"`
	IgnoreUnmatched  bool     `yaml:"ignoreUnmatched"`
	CheckDeterminism bool     `yaml:"checkDeterminism"`
}

// FoldsConfig controls how folds are produced. When GroupColumns is empty, units
// are split without regard to groups.
type FoldsConfig struct {
	N            int      `yaml:"n"`
	GroupColumns []string `yaml:"groupColumns"`
	Shuffle      bool     `yaml:"shuffle"`
	Seed         int64    `yaml:"seed"`
	Parallelism  int      `yaml:"parallelism"`
}

// Load reads a YAML project file (if provided) and applies environment-variable
// overrides. Missing values take their defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Name:     "dataset",
		LogLevel: "info",
		Index: IndexConfig{
			Source:    SourceDSV,
			Delimiter: ",",
		},
		Folds: FoldsConfig{
			N: 5,
		},
	}
}

// applyEnvOverrides reads DATASET_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATASET_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DATASET_INDEX_PATH"); v != "" {
		cfg.Index.Path = v
	}
	if v := os.Getenv("DATASET_GROUP_BY"); v != "" {
		cfg.GroupBy = strings.Split(v, ",")
	}
}

// Validate checks that the configuration describes a usable project
func (c *Config) Validate() error {
	switch c.Index.Source {
	case SourceDSV, SourceJSONL, SourceFiles:
	default:
		return fmt.Errorf("unknown index source %q (expected %s, %s or %s)", c.Index.Source, SourceDSV, SourceJSONL, SourceFiles)
	}
	if c.Index.Path == "" {
		return fmt.Errorf("index.path is required")
	}
	if c.Index.Source == SourceJSONL && len(c.Index.Paths) == 0 {
		return fmt.Errorf("index.paths is required for the %s source", SourceJSONL)
	}
	if c.Index.Source == SourceFiles && c.Index.Pattern == "" {
		return fmt.Errorf("index.pattern is required for the %s source", SourceFiles)
	}
	if len([]rune(c.Index.Delimiter)) > 1 || len([]rune(c.Index.Comment)) > 1 {
		return fmt.Errorf("index.delimiter and index.comment must be single characters")
	}
	return nil
}
