package drift

import (
	"slices"

	"github.com/arcsight/arcsight/internal/domain"
)

// Shift is the direction a changed insight's severity moved.
type Shift int

const (
	ShiftNone Shift = iota
	ShiftEscalated
	ShiftDeescalated
	// ShiftUnranked means at least one side is outside the scale.
	ShiftUnranked
)

func (s Shift) String() string {
	switch s {
	case ShiftEscalated:
		return "escalated"
	case ShiftDeescalated:
		return "de-escalated"
	case ShiftUnranked:
		return "unranked"
	default:
		return "unchanged"
	}
}

// DomainDelta returns the domains current gained and lost relative to previous.
// Both inputs are expected to hold sorted, deduplicated domains as produced by
// snapshot construction.
func DomainDelta(previous, current domain.Insight) (added, removed []string) {
	for _, d := range current.Domains {
		if !slices.Contains(previous.Domains, d) {
			added = append(added, d)
		}
	}
	for _, d := range previous.Domains {
		if !slices.Contains(current.Domains, d) {
			removed = append(removed, d)
		}
	}
	return added, removed
}

// SeverityShift classifies the severity change of c against scale.
func SeverityShift(c domain.ChangedInsight, scale domain.SeverityScale) Shift {
	if c.Previous.Severity == c.Current.Severity {
		return ShiftNone
	}
	p, n := scale.Rank(c.Previous.Severity), scale.Rank(c.Current.Severity)
	switch {
	case p < 0 || n < 0:
		return ShiftUnranked
	case n > p:
		return ShiftEscalated
	default:
		return ShiftDeescalated
	}
}
