package cli

import (
	"fmt"

	"github.com/arcsight/arcsight/internal/adapters/outbound/sarif"
	"github.com/arcsight/arcsight/internal/adapters/outbound/tui"
	"github.com/arcsight/arcsight/internal/application"
	"github.com/arcsight/arcsight/internal/logger"
	"github.com/spf13/cobra"
)

func newDriftCmd() *cobra.Command {
	var (
		projectPath string
		useBaseline bool
		rev         string
		jsonOutput  bool
		outputFile  string
		sarifFile   string
		ciMode      bool
		noHistory   bool
	)

	cmd := &cobra.Command{
		Use:   "drift [previous] <current>",
		Short: "Compare two scans and report architecture drift",
		Long: "Compare a previous and a current scan and list new, changed and resolved insights.\n" +
			"With one argument the previous scan comes from --baseline or from the same file at --rev.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolveProject(projectPath)
			if err != nil {
				return err
			}

			req := application.DriftRequest{
				ProjectPath: absPath,
				PreviousRev: rev,
				UseBaseline: useBaseline,
				CurrentPath: args[len(args)-1],
			}
			if len(args) == 2 {
				req.PreviousPath = args[0]
			}

			svc := newDriftService()
			report, err := svc.Run(req)
			if err != nil {
				return fmt.Errorf("drift failed: %w", err)
			}

			if !noHistory {
				if err := svc.Record(absPath, report); err != nil {
					logger.Warnf("recording history: %v", err) // best-effort
				}
			}

			if outputFile != "" {
				if err := writeJSONFile(outputFile, report.Result); err != nil {
					return err
				}
			}
			if sarifFile != "" {
				if err := sarif.Write(sarif.FromDrift(report.Result, version), sarifFile); err != nil {
					return err
				}
			}

			if jsonOutput {
				if err := renderJSON(cmd, report.Result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderDrift(tui.DriftView{
					Previous: report.Previous.Inventory(),
					Current:  report.Current.Inventory(),
					Result:   report.Result,
					Gate:     &report.Gate,
					Scale:    report.Config.SeverityScale(),
				}))
			}

			if ciMode && !report.Gate.Passed {
				return fmt.Errorf("drift gate failed: %d violations", len(report.Gate.Violations))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path holding .arcsight.yaml and .arcsight/ (defaults to current directory)")
	cmd.Flags().BoolVar(&useBaseline, "baseline", false, "Compare against the stored baseline")
	cmd.Flags().StringVar(&rev, "rev", "", "Compare against the current scan file as of this git revision")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output drift result as JSON")
	cmd.Flags().StringVar(&outputFile, "output", "", "Write the drift result JSON to this file")
	cmd.Flags().StringVar(&sarifFile, "sarif", "", "Write new and changed insights as SARIF to this file")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if the drift gate fails")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this run in drift history")
	cmd.MarkFlagsMutuallyExclusive("baseline", "rev")

	return cmd
}
