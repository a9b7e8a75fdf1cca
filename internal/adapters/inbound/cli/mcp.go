package cli

import (
	mcpadapter "github.com/arcsight/arcsight/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the ArcSight MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start ArcSight MCP server (stdio)",
		Long:  "Start the ArcSight MCP server using stdio transport. This lets AI coding assistants compare scans, inspect them, and read drift history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolveProject(projectPath)
			if err != nil {
				return err
			}
			s := mcpadapter.NewArcSightMCPServer(absPath, version)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")

	return cmd
}
