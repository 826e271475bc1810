package config

import (
	"path/filepath"
	"testing"
)

func TestLoadSampleConfig(t *testing.T) {
	path := filepath.Join("..", "..", "zabbix-inventory.example.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load sample config: %v", err)
	}
	if cfg.Zabbix.URL == "" {
		t.Fatalf("sample config missing zabbix url")
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("sample config invalid: %v", err)
	}
}

func TestValidateRejectsMissingURL(t *testing.T) {
	cfg := &Config{}
	cfg.Zabbix.Username = "Admin"
	cfg.Input.RawCSV = "sending.csv"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for missing zabbix url")
	}
}

func TestValidateRejectsBadTick(t *testing.T) {
	cfg := &Config{}
	cfg.Zabbix.URL = "https://zabbix.example.com"
	cfg.Zabbix.Username = "Admin"
	cfg.Input.RawCSV = "sending.csv"
	cfg.Scheduler.Enabled = true
	cfg.Scheduler.Tick = "often"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for invalid tick")
	}
}

func TestNormalizeWithoutValidate(t *testing.T) {
	Normalize(nil)

	cfg := &Config{}
	cfg.Input.RawCSV = "sending.csv"
	Normalize(cfg)
	if cfg.Input.CleanedCSV != "cleaned_sending.csv" {
		t.Fatalf("unexpected cleaned path %q", cfg.Input.CleanedCSV)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected level %q", cfg.Logging.Level)
	}

	empty := &Config{}
	Normalize(empty)
	if empty.Input.CleanedCSV != "" {
		t.Fatalf("cleaned path invented without raw csv: %q", empty.Input.CleanedCSV)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Zabbix.URL = " https://zabbix.example.com/ "
	cfg.Input.RawCSV = "exports/sending.csv"
	cfg.Scheduler.Enabled = true
	Normalize(cfg)
	if cfg.Zabbix.URL != "https://zabbix.example.com" {
		t.Fatalf("url not trimmed: %q", cfg.Zabbix.URL)
	}
	if cfg.Input.CleanedCSV != filepath.Join("exports", "cleaned_sending.csv") {
		t.Fatalf("unexpected cleaned path %q", cfg.Input.CleanedCSV)
	}
	if cfg.Scheduler.Tick != "24h" {
		t.Fatalf("unexpected tick %q", cfg.Scheduler.Tick)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected level %q", cfg.Logging.Level)
	}
}
