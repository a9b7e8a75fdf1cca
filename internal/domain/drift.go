package domain

// DriftResult describes what changed between a previous and a current snapshot.
type DriftResult struct {
	NewInsights      []Insight        `json:"new_insights"`
	ChangedInsights  []ChangedInsight `json:"changed_insights"`
	ResolvedInsights []Insight        `json:"resolved_insights"`
	Summary          DriftSummary     `json:"summary"`
}

// ChangedInsight pairs the two states of an insight whose key matched.
type ChangedInsight struct {
	Key      string  `json:"key"`
	Previous Insight `json:"previous"`
	Current  Insight `json:"current"`
}

type DriftSummary struct {
	NewCount      int `json:"new_count"`
	ChangedCount  int `json:"changed_count"`
	ResolvedCount int `json:"resolved_count"`
}

// HasDrift reports whether anything changed at all.
func (r *DriftResult) HasDrift() bool {
	return r.Summary.NewCount+r.Summary.ChangedCount+r.Summary.ResolvedCount > 0
}

// Inventory is the per-scan overview: which tables and domains a snapshot covers.
type Inventory struct {
	Fingerprint string        `json:"fingerprint"`
	Tables      []string      `json:"tables"`
	Domains     []string      `json:"domains"`
	Stats       SnapshotStats `json:"stats"`
	Metadata    *ScanMetadata `json:"metadata,omitempty"`
}

func (s *Snapshot) Inventory() Inventory {
	return Inventory{
		Fingerprint: s.Fingerprint(),
		Tables:      s.Tables(),
		Domains:     s.Domains(),
		Stats:       s.Stats(),
		Metadata:    s.Metadata(),
	}
}

// DriftEntry is one recorded drift run.
type DriftEntry struct {
	ID                  string       `json:"id"`
	Timestamp           string       `json:"timestamp"`
	CommitHash          string       `json:"commit_hash,omitempty"`
	PreviousFingerprint string       `json:"previous_fingerprint"`
	CurrentFingerprint  string       `json:"current_fingerprint"`
	Summary             DriftSummary `json:"summary"`
	GatePassed          bool         `json:"gate_passed"`
}
