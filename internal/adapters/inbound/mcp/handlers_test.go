package mcp

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcsight/arcsight/internal/domain"
)

func scan(t *testing.T, name string) string {
	t.Helper()
	p, err := filepath.Abs(filepath.Join("../../../../testdata/scans", name))
	require.NoError(t, err)
	return p
}

func call(t *testing.T, h func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error), args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	res, err := h(context.Background(), mcplib.CallToolRequest{Params: mcplib.CallToolParams{Arguments: args}})
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	return res
}

func text(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	tc, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestHandleDrift(t *testing.T) {
	res := call(t, handleDrift(t.TempDir()), map[string]any{
		"previous": scan(t, "scan_1.json"),
		"current":  scan(t, "scan_2.json"),
	})
	require.False(t, res.IsError, text(t, res))

	var out driftOutput
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &out))
	assert.Equal(t, domain.DriftSummary{NewCount: 1, ChangedCount: 1, ResolvedCount: 1}, out.Result.Summary)
	assert.False(t, out.Gate.Passed)
	assert.Contains(t, out.Current.Tables, "payments")
}

func TestHandleDrift_MissingCurrent(t *testing.T) {
	res := call(t, handleDrift(t.TempDir()), map[string]any{"previous": scan(t, "scan_1.json")})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "current")
}

func TestHandleDrift_DuplicateKey(t *testing.T) {
	res := call(t, handleDrift(t.TempDir()), map[string]any{
		"previous": scan(t, "scan_1.json"),
		"current":  scan(t, "duplicate_key.json"),
	})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "duplicate finding key")
}

func TestHandleDrift_NoBaseline(t *testing.T) {
	res := call(t, handleDrift(t.TempDir()), map[string]any{
		"current":  scan(t, "scan_2.json"),
		"baseline": true,
	})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "no baseline stored")
}

func TestHandleInspect(t *testing.T) {
	res := call(t, handleInspect(t.TempDir()), map[string]any{"scan": scan(t, "scan_1.json")})
	require.False(t, res.IsError, text(t, res))

	var out inventoryOutput
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &out))
	assert.Len(t, out.Insights, 4)
	assert.Equal(t, []string{"invoices", "orders", "sessions", "users"}, out.Inventory.Tables)
}

func TestHandleInspect_RelativeToProject(t *testing.T) {
	dir, err := filepath.Abs("../../../../testdata")
	require.NoError(t, err)

	res := call(t, handleInspect(dir), map[string]any{"scan": "scans/scan_2.yaml"})
	require.False(t, res.IsError, text(t, res))
	assert.Contains(t, text(t, res), "payments")
}

func TestHandleHistory_Empty(t *testing.T) {
	res := call(t, handleHistory(t.TempDir()), nil)
	assert.False(t, res.IsError)
	assert.Contains(t, text(t, res), "No drift history")
}

func TestResources(t *testing.T) {
	dir := t.TempDir()

	_, err := handleBaselineResource(dir)(context.Background(), mcplib.ReadResourceRequest{})
	assert.ErrorIs(t, err, domain.ErrNoPreviousSnapshot)

	_, svc := newServices()
	_, err = svc.PromoteBaseline(dir, scan(t, "scan_1.json"))
	require.NoError(t, err)

	contents, err := handleBaselineResource(dir)(context.Background(), mcplib.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	tc, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, baselineURI, tc.URI)
	assert.Contains(t, tc.Text, "sessions")

	contents, err = handleHistoryResource(dir)(context.Background(), mcplib.ReadResourceRequest{})
	require.NoError(t, err)
	tc, ok = contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "[]", tc.Text)
}
