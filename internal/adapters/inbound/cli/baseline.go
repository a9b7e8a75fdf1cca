package cli

import (
	"fmt"

	"github.com/arcsight/arcsight/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newBaselineCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage the stored baseline scan",
		Long:  "The baseline is the scan that drift --baseline compares against.",
	}
	cmd.PersistentFlags().StringVar(&projectPath, "path", "", "Project path (defaults to current directory)")

	cmd.AddCommand(&cobra.Command{
		Use:   "save <scan>",
		Short: "Validate a scan and store it as the baseline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolveProject(projectPath)
			if err != nil {
				return err
			}
			snap, err := newDriftService().PromoteBaseline(absPath, args[0])
			if err != nil {
				return fmt.Errorf("saving baseline: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Baseline saved: %d insights (%s)\n", snap.Len(), snap.Fingerprint()[:12])
			return nil
		},
	})

	var jsonOutput bool
	show := &cobra.Command{
		Use:   "show",
		Short: "Show the stored baseline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolveProject(projectPath)
			if err != nil {
				return err
			}
			snap, err := newDriftService().Baseline(absPath)
			if err != nil {
				return err
			}
			if snap == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No baseline stored.")
				return nil
			}
			if jsonOutput {
				return renderJSON(cmd, inspectOutput{Inventory: snap.Inventory(), Insights: snap.Insights()})
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderInventory("baseline", snap.Inventory(), snap.Insights()))
			return nil
		},
	}
	show.Flags().BoolVar(&jsonOutput, "json", false, "Output baseline inventory as JSON")
	cmd.AddCommand(show)

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the stored baseline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolveProject(projectPath)
			if err != nil {
				return err
			}
			if err := newDriftService().ClearBaseline(absPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Baseline cleared.")
			return nil
		},
	})

	return cmd
}
