package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/arcsight/arcsight/internal/domain"
	"github.com/arcsight/arcsight/internal/domain/drift"
	"github.com/arcsight/arcsight/internal/logger"
	"github.com/google/uuid"
)

// errConflictingSources is returned when a request names more than one
// previous snapshot source.
var errConflictingSources = errors.New("previous scan, --rev and --baseline are mutually exclusive")

// DriftRequest describes one comparison. The previous snapshot comes from
// exactly one of PreviousPath, PreviousRev (CurrentPath as of that git
// revision) or the stored baseline.
type DriftRequest struct {
	ProjectPath  string
	PreviousPath string
	PreviousRev  string
	UseBaseline  bool
	CurrentPath  string
}

// DriftReport is the outcome of DriftService.Run.
type DriftReport struct {
	Previous *domain.Snapshot
	Current  *domain.Snapshot
	Result   *domain.DriftResult
	Gate     drift.GateResult
	Config   domain.ProjectConfig
}

// DriftService orchestrates the drift pipeline:
// load config → resolve previous → build snapshots → compare → gate.
type DriftService struct {
	reader       domain.ScanReader
	configLoader domain.ConfigLoader
	baseline     domain.BaselineStore
	history      domain.DriftHistory
	git          domain.GitInfo
}

func NewDriftService(
	reader domain.ScanReader,
	configLoader domain.ConfigLoader,
	baseline domain.BaselineStore,
	history domain.DriftHistory,
	git domain.GitInfo,
) *DriftService {
	return &DriftService{
		reader:       reader,
		configLoader: configLoader,
		baseline:     baseline,
		history:      history,
		git:          git,
	}
}

// Run compares the previous and current scans named by req. Both snapshots
// are validated before comparison; a failure on either side fails the call.
func (s *DriftService) Run(req DriftRequest) (*DriftReport, error) {
	cfg, err := s.configLoader.Load(req.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	scale := cfg.SeverityScale()

	prevScan, prevSource, err := s.previousScan(req)
	if err != nil {
		return nil, err
	}
	previous, err := build(prevSource, prevScan, scale)
	if err != nil {
		return nil, err
	}

	curScan, err := s.reader.Read(req.CurrentPath)
	if err != nil {
		return nil, fmt.Errorf("reading scan: %w", err)
	}
	current, err := build(req.CurrentPath, curScan, scale)
	if err != nil {
		return nil, err
	}

	result, err := drift.Compare(previous, current)
	if err != nil {
		return nil, fmt.Errorf("comparing snapshots: %w", err)
	}
	gate := drift.EvaluateGate(result, cfg.EffectiveGate(), scale)

	logger.WithField("previous", prevSource).Infof("drift: %d new, %d changed, %d resolved",
		result.Summary.NewCount, result.Summary.ChangedCount, result.Summary.ResolvedCount)
	if !gate.Passed {
		logger.Warnf("gate failed with %d violations", len(gate.Violations))
	}

	return &DriftReport{
		Previous: previous,
		Current:  current,
		Result:   result,
		Gate:     gate,
		Config:   cfg,
	}, nil
}

func (s *DriftService) previousScan(req DriftRequest) (*domain.ScanData, string, error) {
	sources := 0
	for _, set := range []bool{req.PreviousPath != "", req.PreviousRev != "", req.UseBaseline} {
		if set {
			sources++
		}
	}
	switch {
	case sources == 0:
		return nil, "", domain.ErrNoPreviousSnapshot
	case sources > 1:
		return nil, "", errConflictingSources
	}

	switch {
	case req.PreviousPath != "":
		scan, err := s.reader.Read(req.PreviousPath)
		if err != nil {
			return nil, "", fmt.Errorf("reading scan: %w", err)
		}
		return scan, req.PreviousPath, nil

	case req.PreviousRev != "":
		source := req.CurrentPath + "@" + req.PreviousRev
		data, err := s.git.FileAtRevision(req.ProjectPath, req.PreviousRev, req.CurrentPath)
		if err != nil {
			return nil, "", fmt.Errorf("reading %s: %w", source, err)
		}
		scan, err := s.reader.Parse(req.CurrentPath, data)
		if err != nil {
			return nil, "", fmt.Errorf("reading scan: %w", err)
		}
		return scan, source, nil

	default:
		scan, err := s.baseline.Load(req.ProjectPath)
		if err != nil {
			return nil, "", fmt.Errorf("loading baseline: %w", err)
		}
		if scan == nil {
			return nil, "", fmt.Errorf("no baseline stored: %w", domain.ErrNoPreviousSnapshot)
		}
		return scan, "baseline", nil
	}
}

// Record appends report to the drift history unless history is disabled.
func (s *DriftService) Record(projectPath string, report *DriftReport) error {
	if report.Config.History.Disabled {
		return nil
	}

	entry := domain.DriftEntry{
		ID:                  uuid.NewString(),
		Timestamp:           time.Now().UTC().Format(time.RFC3339),
		PreviousFingerprint: report.Previous.Fingerprint(),
		CurrentFingerprint:  report.Current.Fingerprint(),
		Summary:             report.Result.Summary,
		GatePassed:          report.Gate.Passed,
	}
	if s.git.IsGitRepo(projectPath) {
		if hash, err := s.git.CommitHash(projectPath); err == nil {
			entry.CommitHash = hash
		}
	}

	if err := s.history.Save(projectPath, entry, report.Config.History.Limit); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}

// History returns recorded drift runs, oldest first.
func (s *DriftService) History(projectPath string) ([]domain.DriftEntry, error) {
	entries, err := s.history.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return entries, nil
}

// PromoteBaseline validates the scan at scanPath and stores it as the
// project's baseline.
func (s *DriftService) PromoteBaseline(projectPath, scanPath string) (*domain.Snapshot, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	scan, err := s.reader.Read(scanPath)
	if err != nil {
		return nil, fmt.Errorf("reading scan: %w", err)
	}
	snap, err := build(scanPath, scan, cfg.SeverityScale())
	if err != nil {
		return nil, err
	}

	if err := s.baseline.Save(projectPath, snap.ToScan()); err != nil {
		return nil, fmt.Errorf("saving baseline: %w", err)
	}
	return snap, nil
}

// Baseline returns the stored baseline snapshot, or nil if none is stored.
func (s *DriftService) Baseline(projectPath string) (*domain.Snapshot, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	scan, err := s.baseline.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading baseline: %w", err)
	}
	if scan == nil {
		return nil, nil
	}
	return build("baseline", scan, cfg.SeverityScale())
}

// ClearBaseline removes the stored baseline.
func (s *DriftService) ClearBaseline(projectPath string) error {
	if err := s.baseline.Clear(projectPath); err != nil {
		return fmt.Errorf("clearing baseline: %w", err)
	}
	return nil
}
