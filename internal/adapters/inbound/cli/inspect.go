package cli

import (
	"fmt"
	"path/filepath"

	"github.com/arcsight/arcsight/internal/adapters/outbound/tui"
	"github.com/arcsight/arcsight/internal/domain"
	"github.com/spf13/cobra"
)

// inspectOutput is the JSON shape of inspect and baseline show.
type inspectOutput struct {
	Inventory domain.Inventory `json:"inventory"`
	Insights  []domain.Insight `json:"insights"`
}

func newInspectCmd() *cobra.Command {
	var (
		projectPath string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <scan>",
		Short: "Validate a scan and show its tables, domains and insights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolveProject(projectPath)
			if err != nil {
				return err
			}

			svc := newSnapshotService()
			snap, err := svc.Load(absPath, args[0])
			if err != nil {
				return fmt.Errorf("inspect failed: %w", err)
			}

			inv := svc.Inventory(snap)
			if jsonOutput {
				return renderJSON(cmd, inspectOutput{Inventory: inv, Insights: snap.Insights()})
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderInventory(filepath.Base(args[0]), inv, snap.Insights()))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path holding .arcsight.yaml (defaults to current directory)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output inventory as JSON")

	return cmd
}
