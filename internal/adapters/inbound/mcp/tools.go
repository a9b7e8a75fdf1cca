package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/arcsight/arcsight/internal/adapters/outbound/baseline"
	"github.com/arcsight/arcsight/internal/adapters/outbound/config"
	"github.com/arcsight/arcsight/internal/adapters/outbound/gitinfo"
	"github.com/arcsight/arcsight/internal/adapters/outbound/history"
	"github.com/arcsight/arcsight/internal/adapters/outbound/scanfile"
	"github.com/arcsight/arcsight/internal/application"
	"github.com/arcsight/arcsight/internal/domain"
	"github.com/arcsight/arcsight/internal/domain/drift"
)

// registerTools registers all ArcSight MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. arcsight_drift
	s.AddTool(
		mcplib.NewTool("arcsight_drift",
			mcplib.WithDescription("Compare two architecture scans and return new, changed and resolved insights with the CI gate outcome"),
			mcplib.WithString("current",
				mcplib.Required(),
				mcplib.Description("Path to the current scan (JSON or YAML), relative to the project root"),
			),
			mcplib.WithString("previous", mcplib.Description("Path to the previous scan. Omit when using baseline or rev")),
			mcplib.WithBoolean("baseline", mcplib.Description("Compare against the stored baseline")),
			mcplib.WithString("rev", mcplib.Description("Compare against the current scan file as of this git revision")),
		),
		handleDrift(projectPath),
	)

	// 2. arcsight_inspect
	s.AddTool(
		mcplib.NewTool("arcsight_inspect",
			mcplib.WithDescription("Validate a scan and return its tables, domains, stats and insights"),
			mcplib.WithString("scan",
				mcplib.Required(),
				mcplib.Description("Path to the scan (JSON or YAML), relative to the project root"),
			),
		),
		handleInspect(projectPath),
	)

	// 3. arcsight_history
	s.AddTool(
		mcplib.NewTool("arcsight_history",
			mcplib.WithDescription("Returns recorded drift runs, oldest first"),
		),
		handleHistory(projectPath),
	)
}

// newServices creates the standard set of outbound adapters and services.
func newServices() (*application.SnapshotService, *application.DriftService) {
	reader := scanfile.New()
	cfg := config.New()
	return application.NewSnapshotService(reader, cfg),
		application.NewDriftService(reader, cfg, baseline.New(), history.New(), gitinfo.New())
}

// driftOutput is the arcsight_drift payload.
type driftOutput struct {
	Previous domain.Inventory    `json:"previous"`
	Current  domain.Inventory    `json:"current"`
	Result   *domain.DriftResult `json:"result"`
	Gate     drift.GateResult    `json:"gate"`
}

// inventoryOutput is the arcsight_inspect and arcsight://baseline payload.
type inventoryOutput struct {
	Inventory domain.Inventory `json:"inventory"`
	Insights  []domain.Insight `json:"insights"`
}

func handleDrift(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		current, err := request.RequireString("current")
		if err != nil {
			return errorResult("missing required parameter: current"), nil
		}
		args := request.GetArguments()
		previous, _ := args["previous"].(string)
		useBaseline, _ := args["baseline"].(bool)
		rev, _ := args["rev"].(string)

		req := application.DriftRequest{
			ProjectPath: projectPath,
			PreviousRev: rev,
			UseBaseline: useBaseline,
			CurrentPath: resolve(projectPath, current),
		}
		if previous != "" {
			req.PreviousPath = resolve(projectPath, previous)
		}

		_, svc := newServices()
		report, err := svc.Run(req)
		if err != nil {
			return errorResult(fmt.Sprintf("drift failed: %v", err)), nil
		}

		return jsonResult(driftOutput{
			Previous: report.Previous.Inventory(),
			Current:  report.Current.Inventory(),
			Result:   report.Result,
			Gate:     report.Gate,
		})
	}
}

func handleInspect(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		scan, err := request.RequireString("scan")
		if err != nil {
			return errorResult("missing required parameter: scan"), nil
		}

		svc, _ := newServices()
		snap, err := svc.Load(projectPath, resolve(projectPath, scan))
		if err != nil {
			return errorResult(fmt.Sprintf("inspect failed: %v", err)), nil
		}

		return jsonResult(inventoryOutput{Inventory: svc.Inventory(snap), Insights: snap.Insights()})
	}
}

func handleHistory(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		_, svc := newServices()
		entries, err := svc.History(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if len(entries) == 0 {
			return textResult("No drift history recorded."), nil
		}
		return jsonResult(entries)
	}
}

func resolve(projectPath, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(projectPath, p)
}

// jsonResult marshals v as indented JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
