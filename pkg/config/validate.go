package config

import (
	"fmt"
	"time"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg.Zabbix.URL == "" {
		return fmt.Errorf("zabbix.url is required")
	}
	if cfg.Zabbix.Username == "" {
		return fmt.Errorf("zabbix.username is required")
	}
	if cfg.Input.RawCSV == "" {
		return fmt.Errorf("input.raw_csv is required")
	}
	if cfg.Scheduler.Enabled && cfg.Scheduler.Tick != "" {
		if _, err := time.ParseDuration(cfg.Scheduler.Tick); err != nil {
			return fmt.Errorf("scheduler.tick %q is not a valid duration", cfg.Scheduler.Tick)
		}
	}
	return nil
}
