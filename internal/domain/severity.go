package domain

import "slices"

const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// SeverityScale is an ordered list of severities, least severe first.
type SeverityScale []string

func DefaultSeverityScale() SeverityScale {
	return SeverityScale{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
}

func (s SeverityScale) Contains(severity string) bool {
	return slices.Contains(s, severity)
}

// Rank returns the position of severity in the scale, or -1.
func (s SeverityScale) Rank(severity string) int {
	return slices.Index(s, severity)
}

// AtLeast reports whether severity ranks at or above threshold.
// Severities outside the scale never qualify.
func (s SeverityScale) AtLeast(severity, threshold string) bool {
	r, t := s.Rank(severity), s.Rank(threshold)
	if r < 0 || t < 0 {
		return false
	}
	return r >= t
}
