package domain

import "fmt"

// GatePreset selects a default set of CI thresholds.
type GatePreset string

const (
	GatePresetStrict   GatePreset = "strict"
	GatePresetStandard GatePreset = "standard"
	GatePresetLenient  GatePreset = "lenient"
)

// ValidGatePresets enumerates all recognized gate presets.
var ValidGatePresets = []GatePreset{
	GatePresetStrict,
	GatePresetStandard,
	GatePresetLenient,
}

// ProjectConfig holds project-level configuration loaded from .arcsight.yaml.
type ProjectConfig struct {
	Severities []string      `yaml:"severities"  json:"severities,omitempty"`
	GatePreset GatePreset    `yaml:"gate_preset" json:"gate_preset,omitempty"`
	Gate       GateConfig    `yaml:"gate"        json:"gate,omitempty"`
	History    HistoryConfig `yaml:"history"     json:"history,omitempty"`
}

// GateConfig holds CI thresholds applied to a drift result.
// Pointer types distinguish "not specified" from zero values.
type GateConfig struct {
	FailOn      string `yaml:"fail_on,omitempty"      json:"fail_on,omitempty"`
	MaxNew      *int   `yaml:"max_new,omitempty"      json:"max_new,omitempty"`
	MaxChanged  *int   `yaml:"max_changed,omitempty"  json:"max_changed,omitempty"`
	MaxResolved *int   `yaml:"max_resolved,omitempty" json:"max_resolved,omitempty"`
}

// HistoryConfig controls the drift history log.
type HistoryConfig struct {
	Disabled bool `yaml:"disabled" json:"disabled,omitempty"`
	Limit    int  `yaml:"limit"    json:"limit,omitempty"`
}

// DefaultConfig returns a zero-value config: default severity scale and the
// standard gate.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{}
}

// DefaultGateForPreset returns the thresholds behind a preset.
func DefaultGateForPreset(p GatePreset) GateConfig {
	switch p {
	case GatePresetStrict:
		return GateConfig{FailOn: SeverityMedium, MaxNew: intPtr(0), MaxChanged: intPtr(0)}
	case GatePresetLenient:
		return GateConfig{FailOn: SeverityCritical}
	default: // standard or unrecognized
		return GateConfig{FailOn: SeverityHigh}
	}
}

// SeverityScale returns the configured scale, or the default one.
func (c ProjectConfig) SeverityScale() SeverityScale {
	if len(c.Severities) == 0 {
		return DefaultSeverityScale()
	}
	return SeverityScale(c.Severities)
}

// EffectiveGate returns the configured gate, or the standard preset when
// nothing is configured.
func (c ProjectConfig) EffectiveGate() GateConfig {
	g := c.Gate
	if g.FailOn == "" && g.MaxNew == nil && g.MaxChanged == nil && g.MaxResolved == nil {
		return DefaultGateForPreset(GatePresetStandard)
	}
	return g
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	// 1. severities must be non-empty and unique
	seen := make(map[string]bool, len(c.Severities))
	for i, s := range c.Severities {
		if s == "" {
			return fmt.Errorf("severities[%d] must not be empty", i)
		}
		if seen[s] {
			return fmt.Errorf("duplicate severity %q in severities", s)
		}
		seen[s] = true
	}

	// 2. gate_preset must be known or empty
	if c.GatePreset != "" && !isValidGatePreset(c.GatePreset) {
		return fmt.Errorf("unknown gate_preset %q (valid: strict, standard, lenient)", c.GatePreset)
	}

	// 3. gate thresholds
	if c.Gate.FailOn != "" && !c.SeverityScale().Contains(c.Gate.FailOn) {
		return fmt.Errorf("gate.fail_on %q is not a configured severity", c.Gate.FailOn)
	}
	caps := map[string]*int{
		"max_new":      c.Gate.MaxNew,
		"max_changed":  c.Gate.MaxChanged,
		"max_resolved": c.Gate.MaxResolved,
	}
	for name, ptr := range caps {
		if ptr != nil && *ptr < 0 {
			return fmt.Errorf("gate.%s must be >= 0 (got %d)", name, *ptr)
		}
	}

	// 4. history
	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit must be >= 0 (got %d)", c.History.Limit)
	}

	return nil
}

func isValidGatePreset(p GatePreset) bool {
	for _, v := range ValidGatePresets {
		if v == p {
			return true
		}
	}
	return false
}

func intPtr(v int) *int { return &v }
