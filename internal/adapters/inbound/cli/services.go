package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arcsight/arcsight/internal/adapters/outbound/baseline"
	"github.com/arcsight/arcsight/internal/adapters/outbound/config"
	"github.com/arcsight/arcsight/internal/adapters/outbound/gitinfo"
	"github.com/arcsight/arcsight/internal/adapters/outbound/history"
	"github.com/arcsight/arcsight/internal/adapters/outbound/scanfile"
	"github.com/arcsight/arcsight/internal/application"
	"github.com/spf13/cobra"
)

func newDriftService() *application.DriftService {
	return application.NewDriftService(
		scanfile.New(),
		config.New(),
		baseline.New(),
		history.New(),
		gitinfo.New(),
	)
}

func newSnapshotService() *application.SnapshotService {
	return application.NewSnapshotService(scanfile.New(), config.New())
}

func resolveProject(path string) (string, error) {
	if path == "" {
		path = "."
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return absPath, nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
