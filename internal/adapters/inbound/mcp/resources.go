package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/arcsight/arcsight/internal/domain"
)

const (
	baselineURI = "arcsight://baseline"
	historyURI  = "arcsight://history"
)

// registerResources registers all ArcSight MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	s.AddResource(
		mcplib.NewResource(
			baselineURI,
			"Baseline",
			mcplib.WithResourceDescription("Inventory and insights of the stored baseline scan"),
			mcplib.WithMIMEType("application/json"),
		),
		handleBaselineResource(projectPath),
	)

	s.AddResource(
		mcplib.NewResource(
			historyURI,
			"Drift History",
			mcplib.WithResourceDescription("Recorded drift runs, oldest first"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(projectPath),
	)
}

func handleBaselineResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		_, svc := newServices()
		snap, err := svc.Baseline(projectPath)
		if err != nil {
			return nil, err
		}
		if snap == nil {
			return nil, fmt.Errorf("no baseline stored: %w", domain.ErrNoPreviousSnapshot)
		}
		return jsonContents(baselineURI, inventoryOutput{Inventory: snap.Inventory(), Insights: snap.Insights()})
	}
}

func handleHistoryResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		_, svc := newServices()
		entries, err := svc.History(projectPath)
		if err != nil {
			return nil, err
		}
		if entries == nil {
			entries = []domain.DriftEntry{}
		}
		return jsonContents(historyURI, entries)
	}
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
