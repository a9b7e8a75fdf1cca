package cli

import (
	"fmt"

	"github.com/arcsight/arcsight/internal/adapters/outbound/tui"
	"github.com/arcsight/arcsight/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var (
		projectPath string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded drift runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolveProject(projectPath)
			if err != nil {
				return err
			}

			entries, err := newDriftService().History(absPath)
			if err != nil {
				return err
			}

			if jsonOutput {
				if entries == nil {
					entries = []domain.DriftEntry{}
				}
				return renderJSON(cmd, entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current directory)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")

	return cmd
}
