package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Anitha-Arun/Zabbix-Inventory-Manager/pkg/config"
	"github.com/Anitha-Arun/Zabbix-Inventory-Manager/pkg/convert"
	"github.com/Anitha-Arun/Zabbix-Inventory-Manager/pkg/inventory"
	"github.com/Anitha-Arun/Zabbix-Inventory-Manager/pkg/logging"
	"github.com/Anitha-Arun/Zabbix-Inventory-Manager/pkg/scheduler"
	"github.com/Anitha-Arun/Zabbix-Inventory-Manager/pkg/sync"
	"github.com/Anitha-Arun/Zabbix-Inventory-Manager/pkg/zabbix"
)

func main() {
	var configPath string
	var command string
	var input string
	flag.StringVar(&configPath, "config", "zabbix-inventory.yaml", "path to config file")
	flag.StringVar(&command, "command", "sync", "command to run (sync|clean|convert)")
	flag.StringVar(&input, "input", "", "input file override (raw CSV, or workbook for convert)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		panic(err)
	}
	if input != "" {
		cfg.Input.RawCSV = input
	}
	logger, err := logging.New(cfg.Logging.Path, cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	switch command {
	case "convert":
		runConvert(input, logger)
	case "clean":
		runClean(cfg, logger)
	case "sync":
		runSync(cfg, logger)
	default:
		fmt.Println("unknown command", command)
		os.Exit(1)
	}
}

func runConvert(path string, logger *logrus.Logger) {
	if path == "" {
		logger.Fatal("convert requires -input pointing at a workbook")
	}
	files, err := convert.SheetsToCSV(path, ".")
	if err != nil {
		logger.Fatalf("convert failed: %v", err)
	}
	for _, f := range files {
		fmt.Printf("sheet saved as %s\n", f)
	}
}

func runClean(cfg *config.Config, logger *logrus.Logger) {
	if cfg.Input.RawCSV == "" {
		logger.Fatal("clean requires input.raw_csv or -input")
	}
	config.Normalize(cfg)
	records, err := cleanInput(cfg, logger)
	if err != nil {
		logger.Fatalf("clean failed: %v", err)
	}
	fmt.Printf("cleaned %d records into %s\n", len(records), cfg.Input.CleanedCSV)
}

func runSync(cfg *config.Config, logger *logrus.Logger) {
	if err := config.Validate(cfg); err != nil {
		logger.Fatalf("invalid config: %v", err)
	}
	config.Normalize(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	task := &syncTask{cfg: cfg, log: logger}
	if err := task.Run(ctx); err != nil {
		logger.Fatalf("sync run failed: %v", err)
	}
	if cfg.Scheduler.Enabled {
		logger.Infof("re-syncing every %s", cfg.Scheduler.Tick)
		scheduler.New(cfg.Scheduler, task, logger).Start(ctx)
	}
}

// syncTask cleans the raw export, authenticates and pushes every record.
// It satisfies scheduler.TaskRunner so periodic re-sync reuses it.
type syncTask struct {
	cfg *config.Config
	log *logrus.Logger
}

func (t *syncTask) Run(ctx context.Context) error {
	records, err := cleanInput(t.cfg, t.log)
	if err != nil {
		return err
	}

	client := zabbix.NewClient(t.cfg.Zabbix)
	if err := client.Login(ctx); err != nil {
		return errors.Wrap(err, "authenticate with zabbix")
	}
	t.log.Info("successfully authenticated with zabbix api")

	summary := sync.New(client, t.log).Run(ctx, records)
	fmt.Printf("synced %d of %d devices (%d failed)\n", summary.Success, summary.Total, summary.Failed)

	// the cleaned file is a transient artifact of the run
	if err := os.Remove(t.cfg.Input.CleanedCSV); err != nil {
		t.log.Warnf("could not remove %s: %v", t.cfg.Input.CleanedCSV, err)
	}
	return nil
}

func cleanInput(cfg *config.Config, logger *logrus.Logger) ([]inventory.Record, error) {
	f, err := os.Open(cfg.Input.RawCSV)
	if err != nil {
		return nil, errors.Wrap(err, "open raw csv")
	}
	defer f.Close()

	records, err := inventory.Clean(f)
	if err != nil {
		return nil, errors.Wrap(err, "clean csv")
	}
	logger.Infof("cleaned csv contains %d rows", len(records))

	out, err := os.Create(cfg.Input.CleanedCSV)
	if err != nil {
		return nil, errors.Wrap(err, "create cleaned csv")
	}
	defer out.Close()
	if err := inventory.WriteRecords(out, records); err != nil {
		return nil, err
	}
	return records, nil
}
