package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/arcsight/arcsight/internal/domain"
	"github.com/spf13/cobra"
)

const configFileName = ".arcsight.yaml"

func newInitCmd() *cobra.Command {
	var (
		preset string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .arcsight.yaml configuration file",
		Long:  "Create a .arcsight.yaml with the severity scale and the gate thresholds of a preset.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			p := domain.GatePreset(preset)
			if !slices.Contains(domain.ValidGatePresets, p) {
				return fmt.Errorf("unknown gate preset %q (valid: strict, standard, lenient)", preset)
			}

			if err := os.WriteFile(dest, []byte(generateConfig(p)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", string(domain.GatePresetStandard), "Gate preset (strict, standard, lenient)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .arcsight.yaml")

	return cmd
}

func generateConfig(p domain.GatePreset) string {
	gate := domain.DefaultGateForPreset(p)

	var b strings.Builder
	b.WriteString("# ArcSight configuration\n\n")
	fmt.Fprintf(&b, "severities: [%s]\n\n", strings.Join(domain.DefaultSeverityScale(), ", "))
	fmt.Fprintf(&b, "gate_preset: %s\n\n", p)

	// Preset values, spelled out so they can be tuned in place.
	b.WriteString("# gate:\n")
	fmt.Fprintf(&b, "#   fail_on: %s\n", gate.FailOn)
	for _, c := range []struct {
		name  string
		limit *int
	}{{"max_new", gate.MaxNew}, {"max_changed", gate.MaxChanged}, {"max_resolved", gate.MaxResolved}} {
		if c.limit != nil {
			fmt.Fprintf(&b, "#   %s: %d\n", c.name, *c.limit)
		}
	}

	b.WriteString(`
history:
  limit: 200
`)
	return b.String()
}
