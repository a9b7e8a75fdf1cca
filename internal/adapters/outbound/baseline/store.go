package baseline

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/arcsight/arcsight/internal/domain"
)

// Store is a file-based implementation of domain.BaselineStore.
type Store struct{}

// New creates a new file-based baseline store.
func New() *Store {
	return &Store{}
}

// Load reads the stored baseline scan. Returns (nil, nil) if none exists.
func (s *Store) Load(projectPath string) (*domain.ScanData, error) {
	data, err := os.ReadFile(baselinePath(projectPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // no baseline is not an error
		}
		return nil, err
	}

	var scan domain.ScanData
	if err := json.Unmarshal(data, &scan); err != nil {
		return nil, err
	}
	return &scan, nil
}

// Save writes the baseline scan to disk, creating directories as needed.
func (s *Store) Save(projectPath string, scan *domain.ScanData) error {
	if err := os.MkdirAll(baselineDir(projectPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(scan, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(baselinePath(projectPath), data, 0644)
}

// Clear removes the stored baseline for the given project path.
func (s *Store) Clear(projectPath string) error {
	if err := os.Remove(baselinePath(projectPath)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func baselineDir(projectPath string) string {
	return filepath.Join(projectPath, ".arcsight", "baseline")
}

func baselinePath(projectPath string) string {
	return filepath.Join(baselineDir(projectPath), "scan.json")
}
