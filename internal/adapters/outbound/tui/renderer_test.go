package tui_test

import (
	"testing"

	"github.com/arcsight/arcsight/internal/adapters/outbound/tui"
	"github.com/arcsight/arcsight/internal/domain"
	"github.com/arcsight/arcsight/internal/domain/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleView(t *testing.T) tui.DriftView {
	t.Helper()
	prev, err := domain.BuildSnapshot([]domain.Insight{
		{RuleID: "multi_domain_writer", Severity: "medium", Table: "users", Domains: []string{"auth", "profile"}},
		{RuleID: "shared_table_write", Severity: "low", Table: "sessions", Domains: []string{"auth"}},
	})
	require.NoError(t, err)
	cur, err := domain.BuildSnapshot([]domain.Insight{
		{RuleID: "multi_domain_writer", Severity: "high", Table: "users", Domains: []string{"auth", "profile", "api"}},
		{RuleID: "multi_domain_writer", Severity: "critical", Table: "payments", Domains: []string{"billing", "checkout"},
			Locations: []domain.Location{{File: "billing/charge.go", Line: 42}}},
	})
	require.NoError(t, err)

	result, err := drift.Compare(prev, cur)
	require.NoError(t, err)
	scale := domain.DefaultSeverityScale()
	gate := drift.EvaluateGate(result, domain.GateConfig{FailOn: "high"}, scale)

	return tui.DriftView{
		Previous: prev.Inventory(),
		Current:  cur.Inventory(),
		Result:   result,
		Gate:     &gate,
		Scale:    scale,
	}
}

func TestRenderDrift_ContainsSummary(t *testing.T) {
	output := tui.RenderDrift(sampleView(t))
	assert.Contains(t, output, "+1 new")
	assert.Contains(t, output, "~1 changed")
	assert.Contains(t, output, "-1 resolved")
}

func TestRenderDrift_ContainsColumns(t *testing.T) {
	output := tui.RenderDrift(sampleView(t))
	assert.Contains(t, output, "Previous")
	assert.Contains(t, output, "Current")
	assert.Contains(t, output, "payments now multi-domain")
}

func TestRenderDrift_ChangedShowsShiftAndDomains(t *testing.T) {
	output := tui.RenderDrift(sampleView(t))
	assert.Contains(t, output, "medium → high")
	assert.Contains(t, output, "escalated")
	assert.Contains(t, output, "api")
}

func TestRenderDrift_ContainsLocations(t *testing.T) {
	output := tui.RenderDrift(sampleView(t))
	assert.Contains(t, output, "billing/charge.go:42")
}

func TestRenderDrift_GateFailure(t *testing.T) {
	output := tui.RenderDrift(sampleView(t))
	assert.Contains(t, output, "Gate failed")
	assert.Contains(t, output, "payments")
}

func TestRenderDrift_NoDrift(t *testing.T) {
	snap, err := domain.BuildSnapshot(nil)
	require.NoError(t, err)
	result, err := drift.Compare(snap, snap)
	require.NoError(t, err)

	output := tui.RenderDrift(tui.DriftView{
		Previous: snap.Inventory(),
		Current:  snap.Inventory(),
		Result:   result,
	})
	assert.Contains(t, output, "No drift detected.")
	assert.NotContains(t, output, "Gate")
}

func TestRenderInventory(t *testing.T) {
	total := 9
	snap, err := domain.BuildSnapshot([]domain.Insight{
		{RuleID: "cross_domain_join", Severity: "medium", Table: "invoices", Domains: []string{"billing", "reporting"}},
	}, domain.WithMetadata(&domain.ScanMetadata{TotalTables: &total}))
	require.NoError(t, err)

	output := tui.RenderInventory("scan_1.json", snap.Inventory(), snap.Insights())
	assert.Contains(t, output, "scan_1.json")
	assert.Contains(t, output, "invoices")
	assert.Contains(t, output, "reporting")
	assert.Contains(t, output, "cross domain join")
	assert.Contains(t, output, "Scanner reported 9 tables")
}

func TestRenderHistory_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderHistory(nil), "No drift history found.")
}

func TestRenderHistory_Entries(t *testing.T) {
	output := tui.RenderHistory([]domain.DriftEntry{
		{
			Timestamp:  "2026-03-01T10:00:00Z",
			CommitHash: "abcdef1234567",
			Summary:    domain.DriftSummary{NewCount: 2, ChangedCount: 1},
			GatePassed: false,
		},
		{Timestamp: "2026-03-02T10:00:00Z", GatePassed: true},
	})
	assert.Contains(t, output, "2026-03-01")
	assert.Contains(t, output, "abcdef1")
	assert.NotContains(t, output, "abcdef12")
	assert.Contains(t, output, "+2")
	assert.Contains(t, output, "fail")
	assert.Contains(t, output, "pass")
}

func TestHumanizeRule(t *testing.T) {
	assert.Equal(t, "multi domain writer", tui.HumanizeRule("multi_domain_writer"))
	assert.Equal(t, "multi domain writer", tui.HumanizeRule("MultiDomainWriter"))
	assert.Equal(t, "", tui.HumanizeRule(""))
}
