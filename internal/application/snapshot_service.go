package application

import (
	"fmt"

	"github.com/arcsight/arcsight/internal/domain"
	"github.com/arcsight/arcsight/internal/logger"
)

// SnapshotService turns scan artifacts into validated snapshots using the
// project's configured severity scale.
type SnapshotService struct {
	reader       domain.ScanReader
	configLoader domain.ConfigLoader
}

func NewSnapshotService(reader domain.ScanReader, configLoader domain.ConfigLoader) *SnapshotService {
	return &SnapshotService{
		reader:       reader,
		configLoader: configLoader,
	}
}

// Load reads the scan at scanPath and builds a snapshot from it.
func (s *SnapshotService) Load(projectPath, scanPath string) (*domain.Snapshot, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	scan, err := s.reader.Read(scanPath)
	if err != nil {
		return nil, fmt.Errorf("reading scan: %w", err)
	}

	return build(scanPath, scan, cfg.SeverityScale())
}

// Inventory summarizes a snapshot for display.
func (s *SnapshotService) Inventory(snap *domain.Snapshot) domain.Inventory {
	return snap.Inventory()
}

func build(source string, scan *domain.ScanData, scale domain.SeverityScale) (*domain.Snapshot, error) {
	snap, err := domain.BuildSnapshotFromScan(scan, domain.WithSeverityScale(scale))
	if err != nil {
		return nil, fmt.Errorf("building snapshot from %s: %w", source, err)
	}
	logger.WithField("source", source).Debugf("snapshot built: %d insights, fingerprint %s", snap.Len(), snap.Fingerprint())
	return snap, nil
}
