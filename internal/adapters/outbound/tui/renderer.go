package tui

import (
	"fmt"
	"strings"

	"github.com/arcsight/arcsight/internal/domain"
	"github.com/arcsight/arcsight/internal/domain/drift"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"
)

// ── Warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(faint).
			Padding(0, 1).
			Width(30)

	severityColors = map[string]lipgloss.Color{
		domain.SeverityCritical: danger,
		domain.SeverityHigh:     lipgloss.Color("#FB923C"), // orange
		domain.SeverityMedium:   warning,
		domain.SeverityLow:      info,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// DriftView is everything the drift screen shows.
type DriftView struct {
	Previous domain.Inventory
	Current  domain.Inventory
	Result   *domain.DriftResult
	Gate     *drift.GateResult
	Scale    domain.SeverityScale
}

// RenderDrift formats a drift result for terminal output.
func RenderDrift(v DriftView) string {
	var b strings.Builder
	r := v.Result

	// ── Header ──
	title := headerStyle.Render("arcsight")
	subtitle := dimStyle.Render("Architecture Drift")
	counts := fmt.Sprintf("%s  %s  %s",
		failStyle.Render(fmt.Sprintf("+%d new", r.Summary.NewCount)),
		warnStyle.Render(fmt.Sprintf("~%d changed", r.Summary.ChangedCount)),
		passStyle.Render(fmt.Sprintf("-%d resolved", r.Summary.ResolvedCount)),
	)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + counts))
	b.WriteString("\n\n")

	// ── Side by side: previous, current, drift ──
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		inventoryColumn("Previous", v.Previous),
		inventoryColumn("Current", v.Current),
		driftColumn(r),
	))
	b.WriteString("\n\n")
	b.WriteString("  " + separatorLine + "\n")

	if !r.HasDrift() {
		b.WriteString("\n  " + passStyle.Render("No drift detected.") + "\n")
	}

	renderInsightSection(&b, "New", failStyle.Render("+"), r.NewInsights)
	renderChangedSection(&b, r.ChangedInsights, v.Scale)
	renderInsightSection(&b, "Resolved", passStyle.Render("-"), r.ResolvedInsights)

	if v.Gate != nil {
		b.WriteString("\n")
		renderGate(&b, *v.Gate)
	}

	b.WriteString("\n")
	return b.String()
}

func inventoryColumn(label string, inv domain.Inventory) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(label) + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d insights", inv.Stats.Insights)) + "\n\n")
	b.WriteString(dimStyle.Render("Tables") + "\n")
	for _, t := range inv.Tables {
		b.WriteString("• " + t + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("Domains") + "\n")
	for _, d := range inv.Domains {
		b.WriteString("• " + d + "\n")
	}
	return columnStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func driftColumn(r *domain.DriftResult) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Drift") + "\n\n")
	b.WriteString(dimStyle.Render("New") + "\n")
	for _, in := range r.NewInsights {
		b.WriteString("• " + headline(in) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("Changed  %d", r.Summary.ChangedCount)) + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Resolved %d", r.Summary.ResolvedCount)))
	return columnStyle.Render(b.String())
}

// headline is the one-line summary of an insight, e.g. "payments now multi-domain".
func headline(in domain.Insight) string {
	if len(in.Domains) > 1 {
		return in.Table + " now multi-domain"
	}
	return in.Table
}

func renderInsightSection(b *strings.Builder, title, marker string, insights []domain.Insight) {
	if len(insights) == 0 {
		return
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n\n", titleStyle.Render(title), dimStyle.Render(fmt.Sprintf("(%d)", len(insights))))

	for _, in := range insights {
		fmt.Fprintf(b, "    %s %s %s  %s\n",
			marker,
			severityTag(in.Severity),
			in.Table,
			dimStyle.Render(HumanizeRule(in.RuleID)),
		)
		if len(in.Domains) > 0 {
			fmt.Fprintf(b, "         %s\n", faintStyle.Render(strings.Join(in.Domains, ", ")))
		}
		for _, loc := range in.Locations {
			fmt.Fprintf(b, "         %s\n", fileStyle.Render(formatLocation(loc)))
		}
	}
}

func renderChangedSection(b *strings.Builder, changed []domain.ChangedInsight, scale domain.SeverityScale) {
	if len(changed) == 0 {
		return
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n\n", titleStyle.Render("Changed"), dimStyle.Render(fmt.Sprintf("(%d)", len(changed))))

	for _, c := range changed {
		fmt.Fprintf(b, "    %s %s %s  %s\n",
			warnStyle.Render("~"),
			severityTag(c.Current.Severity),
			c.Current.Table,
			dimStyle.Render(HumanizeRule(c.Current.RuleID)),
		)

		if shift := drift.SeverityShift(c, scale); shift != drift.ShiftNone {
			fmt.Fprintf(b, "         severity %s → %s  %s\n",
				c.Previous.Severity, c.Current.Severity, faintStyle.Render(shift.String()))
		}

		added, removed := drift.DomainDelta(c.Previous, c.Current)
		for _, d := range added {
			fmt.Fprintf(b, "         %s %s\n", failStyle.Render("+"), d)
		}
		for _, d := range removed {
			fmt.Fprintf(b, "         %s %s\n", passStyle.Render("-"), d)
		}
	}
}

func renderGate(b *strings.Builder, gate drift.GateResult) {
	if gate.Passed {
		b.WriteString("  " + passStyle.Render("Gate passed.") + "\n")
		return
	}
	fmt.Fprintf(b, "  %s %s\n", failStyle.Render("Gate failed"), dimStyle.Render(fmt.Sprintf("(%d violations)", len(gate.Violations))))
	for _, v := range gate.Violations {
		fmt.Fprintf(b, "    %s %s\n", failStyle.Render("●"), v)
	}
}

func severityTag(severity string) string {
	color, ok := severityColors[severity]
	if !ok {
		color = dim
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(padRight(severity, 8))
}

// HumanizeRule turns a rule id like "multi_domain_writer" or
// "MultiDomainWriter" into "multi domain writer".
func HumanizeRule(ruleID string) string {
	var words []string
	for _, part := range strings.FieldsFunc(ruleID, func(r rune) bool { return r == '_' || r == '-' || r == '.' }) {
		for _, w := range camelcase.Split(part) {
			words = append(words, strings.ToLower(w))
		}
	}
	return strings.Join(words, " ")
}

func formatLocation(loc domain.Location) string {
	if loc.Line > 0 {
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	}
	return loc.File
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats drift history for terminal output.
func RenderHistory(entries []domain.DriftEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No drift history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Drift History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		gate := passStyle.Render("pass")
		if !e.GatePassed {
			gate = failStyle.Render("fail")
		}

		fmt.Fprintf(&b, "  %s  %s  %s  %s  %s  %s\n",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			failStyle.Render(fmt.Sprintf("+%d", e.Summary.NewCount)),
			warnStyle.Render(fmt.Sprintf("~%d", e.Summary.ChangedCount)),
			passStyle.Render(fmt.Sprintf("-%d", e.Summary.ResolvedCount)),
			gate,
		)
	}

	return b.String()
}
