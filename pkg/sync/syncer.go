package sync

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Anitha-Arun/Zabbix-Inventory-Manager/pkg/inventory"
	"github.com/Anitha-Arun/Zabbix-Inventory-Manager/pkg/naming"
	"github.com/Anitha-Arun/Zabbix-Inventory-Manager/pkg/zabbix"
)

// Directory is the remote inventory surface the syncer drives.
type Directory interface {
	GroupID(ctx context.Context, name string) (string, error)
	CreateHost(ctx context.Context, h zabbix.Host) error
}

// Summary counts the outcome of one sync run.
type Summary struct {
	Success int
	Failed  int
	Total   int
}

// Syncer pushes cleaned records into the remote inventory one at a time.
// It owns the run-scoped identifier counter and hostname registry.
type Syncer struct {
	dir   Directory
	ids   *naming.IDGenerator
	hosts *naming.HostnameAllocator
	log   *logrus.Logger
}

// New creates a syncer with fresh run-scoped state.
func New(dir Directory, log *logrus.Logger) *Syncer {
	return &Syncer{
		dir:   dir,
		ids:   naming.NewIDGenerator(),
		hosts: naming.NewHostnameAllocator(),
		log:   log,
	}
}

// Run processes every record in order. A failing record is counted and the
// loop continues; nothing is retried.
func (s *Syncer) Run(ctx context.Context, records []inventory.Record) Summary {
	summary := Summary{Total: len(records)}
	for _, rec := range records {
		if err := s.syncRecord(ctx, rec); err != nil {
			s.log.Errorf("sync failed for %s (S/N %s): %v", rec.DeviceModel, rec.SerialNumber, err)
			summary.Failed++
			continue
		}
		summary.Success++
	}
	s.log.Infof("processing complete: %d of %d devices succeeded", summary.Success, summary.Total)
	if summary.Failed > 0 {
		s.log.Warnf("failed to process %d devices, check logs for details", summary.Failed)
	}
	return summary
}

func (s *Syncer) syncRecord(ctx context.Context, rec inventory.Record) error {
	identifier := s.ids.Identifier(rec.SerialNumber, rec.MACAddress)
	hostname := s.hosts.Allocate(rec.DeviceModel, identifier)

	groupID, err := s.dir.GroupID(ctx, rec.Team)
	if err != nil {
		return errors.Wrapf(err, "resolve group %q", rec.Team)
	}

	host := zabbix.Host{
		Name:       hostname,
		GroupID:    groupID,
		Model:      rec.DeviceModel,
		Serial:     rec.SerialNumber,
		MAC:        rec.MACAddress,
		AssignedTo: rec.AssignedTo,
		Condition:  rec.Condition,
		Team:       rec.Team,
		Owner:      rec.Owner,
	}
	if err := s.dir.CreateHost(ctx, host); err != nil {
		return err
	}
	s.log.Infof("created host %s in group %s", hostname, rec.Team)
	return nil
}
