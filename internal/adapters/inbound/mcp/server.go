package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewArcSightMCPServer creates a new MCP server with all ArcSight tools and
// resources registered. Relative scan paths are resolved against projectPath,
// which also holds .arcsight.yaml and the .arcsight/ state directory.
func NewArcSightMCPServer(projectPath, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"arcsight",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
