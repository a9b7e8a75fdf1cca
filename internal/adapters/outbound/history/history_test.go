package history_test

import (
	"path/filepath"
	"testing"

	"github.com/arcsight/arcsight/internal/adapters/outbound/history"
	"github.com/arcsight/arcsight/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id string, newCount int) domain.DriftEntry {
	return domain.DriftEntry{
		ID:        id,
		Timestamp: "2026-10-19T10:00:00Z",
		Summary:   domain.DriftSummary{NewCount: newCount},
	}
}

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	e := domain.DriftEntry{
		ID:                  "3f1c",
		Timestamp:           "2026-10-19T10:00:00Z",
		CommitHash:          "abc1234",
		PreviousFingerprint: "aa",
		CurrentFingerprint:  "bb",
		Summary:             domain.DriftSummary{NewCount: 1, ChangedCount: 2, ResolvedCount: 3},
		GatePassed:          true,
	}

	require.NoError(t, h.Save(dir, e, 0))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, e, entries[0])
}

func TestHistory_AppendMultiple(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, entry("1", 1), 0))
	require.NoError(t, h.Save(dir, entry("2", 2), 0))
	require.NoError(t, h.Save(dir, entry("3", 3), 0))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "1", entries[0].ID)
	assert.Equal(t, 3, entries[2].Summary.NewCount)
}

func TestHistory_LimitKeepsNewest(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	for _, id := range []string{"1", "2", "3", "4"} {
		require.NoError(t, h.Save(dir, entry(id, 0), 2))
	}

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "3", entries[0].ID)
	assert.Equal(t, "4", entries[1].ID)
}

func TestHistory_LoadEmpty(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entries, err := h.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	nestedDir := filepath.Join(dir, "deep", "nested")
	h := history.New()

	require.NoError(t, h.Save(nestedDir, entry("1", 0), 0))

	entries, err := h.Load(nestedDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
