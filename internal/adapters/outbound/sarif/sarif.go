package sarif

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arcsight/arcsight/internal/domain"
)

const schemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

// Report represents a SARIF 2.1.0 report structure
type Report struct {
	Version string `json:"version"`
	Schema  string `json:"$schema"`
	Runs    []Run  `json:"runs"`
}

type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

type Tool struct {
	Driver Driver `json:"driver"`
}

type Driver struct {
	Name            string `json:"name"`
	InformationURI  string `json:"informationUri,omitempty"`
	SemanticVersion string `json:"semanticVersion,omitempty"`
}

// Result represents a single drifted insight
type Result struct {
	RuleID     string            `json:"ruleId"`
	Level      string            `json:"level"` // "error", "warning", "note"
	Message    Message           `json:"message"`
	Locations  []Location        `json:"locations,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           *Region          `json:"region,omitempty"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
}

type Region struct {
	StartLine int `json:"startLine"`
}

// FromDrift converts new and changed insights into SARIF results.
// Resolved insights are not reported; they are no longer present in the code.
func FromDrift(result *domain.DriftResult, version string) *Report {
	results := []Result{}

	for _, in := range result.NewInsights {
		results = append(results, toResult(in, "new", fmt.Sprintf("New: %s", describe(in))))
	}
	for _, c := range result.ChangedInsights {
		msg := fmt.Sprintf("Changed: %s (was %s, domains %v)", describe(c.Current), c.Previous.Severity, c.Previous.Domains)
		results = append(results, toResult(c.Current, "changed", msg))
	}

	return &Report{
		Version: "2.1.0",
		Schema:  schemaURI,
		Runs: []Run{{
			Tool: Tool{Driver: Driver{
				Name:            "arcsight",
				InformationURI:  "https://arcsight.io",
				SemanticVersion: version,
			}},
			Results: results,
		}},
	}
}

// Level maps an insight severity to a SARIF level.
func Level(severity string) string {
	switch severity {
	case domain.SeverityCritical, domain.SeverityHigh:
		return "error"
	case domain.SeverityMedium:
		return "warning"
	default:
		return "note"
	}
}

// Write saves a SARIF report to disk.
func Write(report *Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal SARIF: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write SARIF file: %w", err)
	}

	return nil
}

func toResult(in domain.Insight, drift, msg string) Result {
	r := Result{
		RuleID:  in.RuleID,
		Level:   Level(in.Severity),
		Message: Message{Text: msg},
		Properties: map[string]string{
			"drift": drift,
			"table": in.Table,
		},
	}
	for _, loc := range in.Locations {
		pl := PhysicalLocation{ArtifactLocation: ArtifactLocation{URI: loc.File}}
		if loc.Line > 0 {
			pl.Region = &Region{StartLine: loc.Line}
		}
		r.Locations = append(r.Locations, Location{PhysicalLocation: pl})
	}
	return r
}

func describe(in domain.Insight) string {
	if in.Description != "" {
		return in.Description
	}
	return fmt.Sprintf("%s on %s", in.RuleID, in.Table)
}
