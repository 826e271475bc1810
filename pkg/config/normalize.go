package config

import (
	"path/filepath"
	"strings"
)

// Normalize applies post-load normalization and defaulting.
// It is allowed to mutate configuration.
// It is safe on configurations that have not passed Validate, so commands
// that only touch the input file can use it without the full sync checks.
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	cfg.Zabbix.URL = strings.TrimRight(strings.TrimSpace(cfg.Zabbix.URL), "/")
	if cfg.Input.CleanedCSV == "" && cfg.Input.RawCSV != "" {
		dir, file := filepath.Split(cfg.Input.RawCSV)
		cfg.Input.CleanedCSV = filepath.Join(dir, "cleaned_"+file)
	}
	if cfg.Scheduler.Enabled && cfg.Scheduler.Tick == "" {
		cfg.Scheduler.Tick = "24h"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
