package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arcsight/arcsight/internal/adapters/inbound/cli"
	"github.com/arcsight/arcsight/internal/adapters/outbound/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd_CreatesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".arcsight.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "gate_preset: standard")
	assert.Contains(t, string(data), "severities: [low, medium, high, critical]")
}

func TestInitCmd_GeneratedConfigLoads(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--preset", "strict"})
	require.NoError(t, root.Execute())

	cfg, err := config.New().Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "medium", cfg.Gate.FailOn)
	require.NotNil(t, cfg.Gate.MaxNew)
	assert.Equal(t, 0, *cfg.Gate.MaxNew)
	assert.Equal(t, 200, cfg.History.Limit)
}

func TestInitCmd_FailsIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".arcsight.yaml"), []byte("existing"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".arcsight.yaml"), []byte("old"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--force"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".arcsight.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "gate_preset:")
	assert.NotEqual(t, "old", string(data))
}

func TestInitCmd_InvalidPreset(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--preset", "paranoid"})
	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown gate preset")
}
