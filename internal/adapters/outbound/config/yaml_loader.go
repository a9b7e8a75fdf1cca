package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arcsight/arcsight/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".arcsight.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .arcsight.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .arcsight.yaml from projectPath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate before merging, so typos in the raw input are reported.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	if cfg.GatePreset != "" {
		cfg.Gate = mergeGate(domain.DefaultGateForPreset(cfg.GatePreset), cfg.Gate)
	}

	return cfg, nil
}

// mergeGate overlays explicit gate values on top of preset defaults.
// Explicit (non-zero) values always win.
func mergeGate(base, override domain.GateConfig) domain.GateConfig {
	result := base

	if override.FailOn != "" {
		result.FailOn = override.FailOn
	}
	if override.MaxNew != nil {
		result.MaxNew = override.MaxNew
	}
	if override.MaxChanged != nil {
		result.MaxChanged = override.MaxChanged
	}
	if override.MaxResolved != nil {
		result.MaxResolved = override.MaxResolved
	}

	return result
}
