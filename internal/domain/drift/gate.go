package drift

import (
	"fmt"

	"github.com/arcsight/arcsight/internal/domain"
)

// GateResult is the outcome of applying CI thresholds to a drift result.
type GateResult struct {
	Passed     bool     `json:"passed"`
	Violations []string `json:"violations"`
}

// EvaluateGate checks result against the configured caps and severity threshold.
// A new or changed insight whose current severity reaches gate.FailOn is a
// violation; resolved insights never are.
func EvaluateGate(result *domain.DriftResult, gate domain.GateConfig, scale domain.SeverityScale) GateResult {
	violations := []string{}

	checkCap := func(name string, limit *int, got int) {
		if limit != nil && got > *limit {
			violations = append(violations, fmt.Sprintf("%d %s insights exceed limit %d", got, name, *limit))
		}
	}
	checkCap("new", gate.MaxNew, result.Summary.NewCount)
	checkCap("changed", gate.MaxChanged, result.Summary.ChangedCount)
	checkCap("resolved", gate.MaxResolved, result.Summary.ResolvedCount)

	if gate.FailOn != "" {
		for _, in := range result.NewInsights {
			if scale.AtLeast(in.Severity, gate.FailOn) {
				violations = append(violations, fmt.Sprintf("new %s insight %s", in.Severity, in.Key()))
			}
		}
		for _, c := range result.ChangedInsights {
			if scale.AtLeast(c.Current.Severity, gate.FailOn) {
				violations = append(violations, fmt.Sprintf("changed %s insight %s", c.Current.Severity, c.Key))
			}
		}
	}

	return GateResult{Passed: len(violations) == 0, Violations: violations}
}
