package scanfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcsight/arcsight/internal/domain"
	"gopkg.in/yaml.v3"
)

// Reader implements domain.ScanReader for JSON and YAML scan artifacts.
type Reader struct{}

func New() *Reader { return &Reader{} }

// Read loads and decodes the scan at path.
func (r *Reader) Read(path string) (*domain.ScanData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return r.Parse(path, data)
}

// Parse decodes data. YAML is used for .yaml/.yml names, JSON otherwise.
func (r *Reader) Parse(name string, data []byte) (*domain.ScanData, error) {
	var scan domain.ScanData

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &scan); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filepath.Base(name), err)
		}
	default:
		if err := json.Unmarshal(data, &scan); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filepath.Base(name), err)
		}
	}

	return &scan, nil
}
