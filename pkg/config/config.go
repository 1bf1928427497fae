package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/simonhull/firebird-suite/perch/pkg/store"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "perch.yml"

// EnvPrefix prefixes environment overrides, e.g. PERCH_OUTPUT.
const EnvPrefix = "PERCH"

// Config holds perch settings. Without a file, environment or flags the
// zero-configuration defaults apply.
type Config struct {
	Output      string `yaml:"output" mapstructure:"output"`
	Project     string `yaml:"project" mapstructure:"project"`
	HistoryFile string `yaml:"history_file" mapstructure:"history_file"`
	LogLevel    string `yaml:"log_level" mapstructure:"log_level"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output:   store.DefaultPath,
		Project:  "steamed-bun-task",
		LogLevel: "silent",
	}
}

// flagNames maps config keys to the command-line flags that override them.
var flagNames = map[string]string{
	"output":       "output",
	"history_file": "history",
	"log_level":    "log-level",
}

// Load layers defaults, the config file, PERCH_* environment variables and
// the matching flags in flags. An empty path means
// DefaultFile in the working directory, which may be absent; an explicit
// path must exist.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("output", def.Output)
	v.SetDefault("project", def.Project)
	v.SetDefault("history_file", def.HistoryFile)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetConfigType("yaml")
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if explicit || !isNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	if flags != nil {
		for key, name := range flagNames {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", key, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Output == "" {
		cfg.Output = def.Output
	}

	return &cfg, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// Save writes configuration to a YAML file
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
