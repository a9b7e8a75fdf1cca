package domain

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/zeebo/blake3"
)

// ScanData is the raw artifact produced by a scanner run.
type ScanData struct {
	Insights []Insight    `json:"insights"           yaml:"insights"`
	Metadata *ScanMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ScanMetadata carries the optional counters a scanner reports.
type ScanMetadata struct {
	TotalTables  *int `json:"total_tables,omitempty"  yaml:"total_tables,omitempty"`
	TotalDomains *int `json:"total_domains,omitempty" yaml:"total_domains,omitempty"`
	TotalFiles   *int `json:"total_files,omitempty"   yaml:"total_files,omitempty"`
}

// SnapshotStats are counters derived from the insights themselves.
type SnapshotStats struct {
	Insights int `json:"insights"`
	Tables   int `json:"tables"`
	Domains  int `json:"domains"`
	Files    int `json:"files"`
}

// Snapshot is a validated, indexed, immutable view of one scan.
// Only BuildSnapshot produces a usable Snapshot; the zero value is invalid.
type Snapshot struct {
	built       bool
	byKey       map[InsightKey]Insight
	keys        []InsightKey
	tables      []string
	domains     []string
	files       int
	metadata    *ScanMetadata
	fingerprint string
}

type snapshotOptions struct {
	scale    SeverityScale
	metadata *ScanMetadata
}

type SnapshotOption func(*snapshotOptions)

// WithSeverityScale rejects insights whose severity is outside scale.
func WithSeverityScale(scale SeverityScale) SnapshotOption {
	return func(o *snapshotOptions) { o.scale = scale }
}

func WithMetadata(meta *ScanMetadata) SnapshotOption {
	return func(o *snapshotOptions) { o.metadata = meta }
}

// BuildSnapshot validates and indexes insights. Every insight needs a rule id
// and a table, and (rule_id, table) must be unique across the input.
func BuildSnapshot(insights []Insight, opts ...SnapshotOption) (*Snapshot, error) {
	var o snapshotOptions
	for _, opt := range opts {
		opt(&o)
	}

	s := &Snapshot{
		byKey:    make(map[InsightKey]Insight, len(insights)),
		keys:     make([]InsightKey, 0, len(insights)),
		metadata: o.metadata,
	}
	position := make(map[InsightKey]int, len(insights))
	tables := make(map[string]struct{})
	domains := make(map[string]struct{})
	files := make(map[string]struct{})

	for i, in := range insights {
		switch {
		case in.RuleID == "":
			return nil, &InvalidInsightError{Index: i, Field: "rule_id"}
		case in.Table == "":
			return nil, &InvalidInsightError{Index: i, Field: "table"}
		}

		key := in.Key()
		if first, dup := position[key]; dup {
			return nil, &DuplicateFindingKeyError{Key: key, First: first, Second: i}
		}
		if o.scale != nil && !o.scale.Contains(in.Severity) {
			return nil, &UnknownSeverityError{Key: key, Severity: in.Severity, Scale: o.scale}
		}
		position[key] = i

		c := in.clone()
		s.byKey[key] = c
		s.keys = append(s.keys, key)
		tables[c.Table] = struct{}{}
		for _, d := range c.Domains {
			domains[d] = struct{}{}
		}
		for _, loc := range c.Locations {
			if loc.File != "" {
				files[loc.File] = struct{}{}
			}
		}
	}

	slices.SortFunc(s.keys, InsightKey.Compare)
	s.tables = sortedSet(tables)
	s.domains = sortedSet(domains)
	s.files = len(files)

	fp, err := fingerprint(s)
	if err != nil {
		return nil, err
	}
	s.fingerprint = fp
	s.built = true
	return s, nil
}

// BuildSnapshotFromScan builds a snapshot from a raw scan, carrying its metadata.
func BuildSnapshotFromScan(scan *ScanData, opts ...SnapshotOption) (*Snapshot, error) {
	if scan == nil {
		return BuildSnapshot(nil, opts...)
	}
	opts = append([]SnapshotOption{WithMetadata(scan.Metadata)}, opts...)
	return BuildSnapshot(scan.Insights, opts...)
}

// Valid reports whether s came out of BuildSnapshot.
func (s *Snapshot) Valid() bool {
	return s != nil && s.built
}

// Lookup returns the insight stored under key.
func (s *Snapshot) Lookup(key InsightKey) (Insight, bool) {
	in, ok := s.byKey[key]
	if !ok {
		return Insight{}, false
	}
	return in.clone(), true
}

func (s *Snapshot) Len() int { return len(s.keys) }

// Keys returns all keys ordered by rule id, then table.
func (s *Snapshot) Keys() []InsightKey {
	return slices.Clone(s.keys)
}

// Insights returns all insights in key order.
func (s *Snapshot) Insights() []Insight {
	out := make([]Insight, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.byKey[k].clone())
	}
	return out
}

// Tables returns the distinct table names, ascending.
func (s *Snapshot) Tables() []string { return slices.Clone(s.tables) }

// Domains returns the distinct domains across all insights, ascending.
func (s *Snapshot) Domains() []string { return slices.Clone(s.domains) }

func (s *Snapshot) Metadata() *ScanMetadata { return s.metadata }

func (s *Snapshot) Stats() SnapshotStats {
	return SnapshotStats{
		Insights: len(s.keys),
		Tables:   len(s.tables),
		Domains:  len(s.domains),
		Files:    s.files,
	}
}

// Fingerprint is a blake3 digest of the canonical insight list. Snapshots
// holding the same insights share a fingerprint regardless of input order.
func (s *Snapshot) Fingerprint() string { return s.fingerprint }

// ToScan converts the snapshot back into the raw artifact shape.
func (s *Snapshot) ToScan() *ScanData {
	return &ScanData{Insights: s.Insights(), Metadata: s.metadata}
}

func fingerprint(s *Snapshot) (string, error) {
	ordered := make([]Insight, 0, len(s.keys))
	for _, k := range s.keys {
		ordered = append(ordered, s.byKey[k])
	}
	data, err := json.Marshal(ordered)
	if err != nil {
		return "", fmt.Errorf("canonicalizing insights: %w", err)
	}
	sum := blake3.Sum256(data)
	return fmt.Sprintf("%x", sum[:]), nil
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
