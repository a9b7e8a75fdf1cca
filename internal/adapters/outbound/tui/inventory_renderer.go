package tui

import (
	"fmt"
	"strings"

	"github.com/arcsight/arcsight/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderInventory renders one snapshot's tables, domains and insights.
func RenderInventory(label string, inv domain.Inventory, insights []domain.Insight) string {
	var b strings.Builder

	labelLine := titleStyle.Render(label)
	statsLine := dimStyle.Render(fmt.Sprintf("%d insights  %d tables  %d domains  %d files",
		inv.Stats.Insights, inv.Stats.Tables, inv.Stats.Domains, inv.Stats.Files))
	fpLine := faintStyle.Render(shortFingerprint(inv.Fingerprint))

	b.WriteString(boxStyle.Render(labelLine + "\n" + statsLine + "\n" + fpLine))
	b.WriteString("\n")

	renderNameSection(&b, "Tables", inv.Tables)
	renderNameSection(&b, "Domains", inv.Domains)

	if len(insights) > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s %s\n",
			sectionHeaderStyle.Render("Insights"),
			dimStyle.Render(fmt.Sprintf("(%d)", len(insights))),
		)
		for _, in := range insights {
			fmt.Fprintf(&b, "    %s %s  %s\n",
				severityTag(in.Severity),
				in.Table,
				dimStyle.Render(HumanizeRule(in.RuleID)),
			)
		}
	}

	if m := inv.Metadata; m != nil && m.TotalTables != nil && *m.TotalTables != inv.Stats.Tables {
		b.WriteString("\n")
		b.WriteString("  " + hintStyle.Render(fmt.Sprintf("Scanner reported %d tables; %d carry insights.", *m.TotalTables, inv.Stats.Tables)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderNameSection(b *strings.Builder, title string, names []string) {
	if len(names) == 0 {
		return
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n",
		sectionHeaderStyle.Render(title),
		dimStyle.Render(fmt.Sprintf("(%d)", len(names))),
	)
	for _, n := range names {
		fmt.Fprintf(b, "    %s %s\n", faintStyle.Render("●"), n)
	}
}

func shortFingerprint(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}
