package domain

import (
	"slices"
	"strings"
)

// Insight is one structural finding about a single table at scan time.
type Insight struct {
	RuleID      string     `json:"rule_id"     yaml:"rule_id"`
	Severity    string     `json:"severity"    yaml:"severity"`
	Table       string     `json:"table"       yaml:"table"`
	Domains     []string   `json:"domains"     yaml:"domains"`
	Description string     `json:"description" yaml:"description"`
	Locations   []Location `json:"locations"   yaml:"locations"`
}

// Location points at a piece of evidence for an insight.
type Location struct {
	File string `json:"file"           yaml:"file"`
	Line int    `json:"line,omitempty" yaml:"line,omitempty"`
}

// InsightKey identifies an insight across snapshots.
type InsightKey struct {
	RuleID string
	Table  string
}

func (k InsightKey) String() string {
	return k.RuleID + ":" + k.Table
}

// Compare orders keys by rule id, then table.
func (k InsightKey) Compare(other InsightKey) int {
	if c := strings.Compare(k.RuleID, other.RuleID); c != 0 {
		return c
	}
	return strings.Compare(k.Table, other.Table)
}

func (i Insight) Key() InsightKey {
	return InsightKey{RuleID: i.RuleID, Table: i.Table}
}

// Equivalent reports whether two insights carry the same structural state:
// same severity and the same set of domains. Description and locations are
// evidence and do not participate.
func (i Insight) Equivalent(other Insight) bool {
	if i.Severity != other.Severity {
		return false
	}
	return slices.Equal(normalizeDomains(i.Domains), normalizeDomains(other.Domains))
}

// normalizeDomains returns a sorted, deduplicated copy with empty names removed.
func normalizeDomains(domains []string) []string {
	out := make([]string, 0, len(domains))
	for _, d := range domains {
		if d != "" {
			out = append(out, d)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func (i Insight) clone() Insight {
	c := i
	c.Domains = normalizeDomains(i.Domains)
	c.Locations = make([]Location, len(i.Locations))
	copy(c.Locations, i.Locations)
	return c
}
