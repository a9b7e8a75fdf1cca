package drift

import (
	"github.com/arcsight/arcsight/internal/domain"
)

// Compare computes the drift from previous to current.
//
// Both snapshots must come from domain.BuildSnapshot; raw insights are never
// re-validated here. Keys are walked as a merge of the two sorted key lists,
// so every list in the result is ordered by (rule_id, table) and the whole
// pass is linear in the size of both snapshots.
func Compare(previous, current *domain.Snapshot) (*domain.DriftResult, error) {
	if !previous.Valid() || !current.Valid() {
		return nil, domain.ErrInvalidSnapshot
	}

	result := &domain.DriftResult{
		NewInsights:      []domain.Insight{},
		ChangedInsights:  []domain.ChangedInsight{},
		ResolvedInsights: []domain.Insight{},
	}

	prevKeys, curKeys := previous.Keys(), current.Keys()
	i, j := 0, 0
	for i < len(prevKeys) || j < len(curKeys) {
		switch {
		case j == len(curKeys) || (i < len(prevKeys) && prevKeys[i].Compare(curKeys[j]) < 0):
			old, _ := previous.Lookup(prevKeys[i])
			result.ResolvedInsights = append(result.ResolvedInsights, old)
			i++
		case i == len(prevKeys) || prevKeys[i].Compare(curKeys[j]) > 0:
			added, _ := current.Lookup(curKeys[j])
			result.NewInsights = append(result.NewInsights, added)
			j++
		default:
			old, _ := previous.Lookup(prevKeys[i])
			now, _ := current.Lookup(curKeys[j])
			if !old.Equivalent(now) {
				result.ChangedInsights = append(result.ChangedInsights, domain.ChangedInsight{
					Key:      prevKeys[i].String(),
					Previous: old,
					Current:  now,
				})
			}
			i++
			j++
		}
	}

	result.Summary = Summarize(result)
	return result, nil
}

// Summarize derives the summary counts from the result lists.
func Summarize(r *domain.DriftResult) domain.DriftSummary {
	return domain.DriftSummary{
		NewCount:      len(r.NewInsights),
		ChangedCount:  len(r.ChangedInsights),
		ResolvedCount: len(r.ResolvedInsights),
	}
}
