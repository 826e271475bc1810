package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the inventory manager configuration file.
type Config struct {
	Zabbix    ZabbixConfig    `yaml:"zabbix"`
	Input     InputConfig     `yaml:"input"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ZabbixConfig stores API endpoint and credentials.
type ZabbixConfig struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// InputConfig points at the raw export and the transient cleaned file.
type InputConfig struct {
	RawCSV     string `yaml:"raw_csv"`
	CleanedCSV string `yaml:"cleaned_csv"`
}

// SchedulerConfig configures periodic re-sync.
type SchedulerConfig struct {
	Enabled bool   `yaml:"enabled"`
	Tick    string `yaml:"tick"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// Load reads YAML configuration from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	return cfg, nil
}
