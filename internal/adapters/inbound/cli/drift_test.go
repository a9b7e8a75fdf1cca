package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arcsight/arcsight/internal/adapters/inbound/cli"
	"github.com/arcsight/arcsight/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scansDir = "../../../../testdata/scans"

func scan(name string) string { return filepath.Join(scansDir, name) }

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestDriftCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "drift", scan("scan_1.json"), scan("scan_2.json"), "--json", "--path", dir)
	require.NoError(t, err)

	var result domain.DriftResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, domain.DriftSummary{NewCount: 1, ChangedCount: 1, ResolvedCount: 1}, result.Summary)
	assert.Contains(t, out, `"new_insights"`)
	assert.Contains(t, out, `"changed_insights"`)
	assert.Contains(t, out, `"resolved_insights"`)
	assert.Contains(t, out, `"key": "multi_domain_writer:users"`)
}

func TestDriftCommand_IdenticalScansHaveEmptyArrays(t *testing.T) {
	out, err := run(t, "drift", scan("scan_1.json"), scan("scan_1.json"), "--json", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, `"new_insights": []`)
	assert.Contains(t, out, `"changed_insights": []`)
	assert.Contains(t, out, `"resolved_insights": []`)
}

func TestDriftCommand_DefaultTUI(t *testing.T) {
	out, err := run(t, "drift", scan("scan_1.json"), scan("scan_2.json"), "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "arcsight")
	assert.Contains(t, out, "payments now multi-domain")
}

func TestDriftCommand_CIFails(t *testing.T) {
	_, err := run(t, "drift", scan("scan_1.json"), scan("scan_2.json"), "--ci", "--path", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drift gate failed")
}

func TestDriftCommand_CIPasses(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".arcsight.yaml"), []byte("gate_preset: lenient\ngate:\n  fail_on: critical\n  max_new: 5\n"), 0644))

	_, err := run(t, "drift", scan("scan_1.json"), scan("scan_1.json"), "--ci", "--path", dir)
	assert.NoError(t, err)
}

func TestDriftCommand_OutputAndSARIF(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "drift_changes.json")
	sarifFile := filepath.Join(dir, "drift.sarif")

	_, err := run(t, "drift", scan("scan_1.json"), scan("scan_2.json"), "--path", dir, "--output", outFile, "--sarif", sarifFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var result domain.DriftResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, 1, result.Summary.NewCount)

	data, err = os.ReadFile(sarifFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"2.1.0"`)
	assert.Contains(t, string(data), "multi_domain_writer")
}

func TestDriftCommand_RecordsHistory(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "drift", scan("scan_1.json"), scan("scan_2.json"), "--json", "--path", dir)
	require.NoError(t, err)
	_, err = run(t, "drift", scan("scan_1.json"), scan("scan_2.json"), "--json", "--path", dir, "--no-history")
	require.NoError(t, err)

	out, err := run(t, "history", "--json", "--path", dir)
	require.NoError(t, err)
	var entries []domain.DriftEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Summary.ChangedCount)
}

func TestDriftCommand_DuplicateKey(t *testing.T) {
	_, err := run(t, "drift", scan("scan_1.json"), scan("duplicate_key.json"), "--path", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate finding key")
}

func TestDriftCommand_SingleArgNeedsSource(t *testing.T) {
	_, err := run(t, "drift", scan("scan_2.json"), "--path", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no previous snapshot")
}

func TestDriftCommand_BaselineAndRevExclusive(t *testing.T) {
	_, err := run(t, "drift", scan("scan_2.json"), "--baseline", "--rev", "HEAD", "--path", t.TempDir())
	assert.Error(t, err)
}

func TestBaselineCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "baseline", "show", "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No baseline stored.")

	out, err = run(t, "baseline", "save", scan("scan_1.json"), "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Baseline saved: 4 insights")

	out, err = run(t, "baseline", "show", "--json", "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, `"sessions"`)

	out, err = run(t, "drift", scan("scan_2.json"), "--baseline", "--json", "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, `"resolved_count": 1`)

	out, err = run(t, "baseline", "clear", "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Baseline cleared.")

	_, err = run(t, "drift", scan("scan_2.json"), "--baseline", "--path", dir)
	assert.Error(t, err)
}

func TestInspectCommand(t *testing.T) {
	out, err := run(t, "inspect", scan("scan_2.yaml"), "--json", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, `"inventory"`)
	assert.Contains(t, out, `"payments"`)

	out, err = run(t, "inspect", scan("scan_1.json"), "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "scan_1.json")
	assert.Contains(t, out, "invoices")
}

func TestHistoryCommand_Empty(t *testing.T) {
	out, err := run(t, "history", "--json", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)

	out, err = run(t, "history", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No drift history found.")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "arcsight dev")
}
