package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/scholarhub/internal/campus"
	"github.com/theirongolddev/scholarhub/internal/cli"
	"github.com/theirongolddev/scholarhub/internal/ledger"
	"github.com/theirongolddev/scholarhub/internal/tui/components"
	"github.com/theirongolddev/scholarhub/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderHomeTab(cw int) string {
	t := theme.Active
	state := a.sess.State()
	snap := a.sess.Snapshot()

	remainingNote := "left this term"
	if snap.Overspent {
		remainingNote = "over budget"
	}
	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Total Budget", Value: a.money(snap.TotalBudget)},
		{Label: "Spent", Value: a.money(snap.TotalSpent), Note: fmt.Sprintf("%d expenses", len(state.Expenses))},
		{Label: "Remaining", Value: a.money(snap.Remaining), Note: remainingNote, Alert: snap.Overspent},
		{Label: "Savings", Value: cli.FormatPercent(snap.SavingsPct), Note: a.money(snap.SavingsCurrent) + " saved"},
	}, cw)

	widths := components.LayoutRow(cw, 2)

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	amountStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	var recent strings.Builder
	inner := components.CardInnerWidth(widths[0])
	expenses := ledger.Recent(state.Expenses, a.cfg.General.RecentLimit)
	if len(expenses) == 0 {
		recent.WriteString(mutedStyle.Render("No expenses yet. Press a to add one."))
	}
	for i, e := range expenses {
		amt := a.money(e.Amount)
		descW := inner - lipgloss.Width(amt) - 1
		if descW < 8 {
			descW = 8
		}
		recent.WriteString(rowStyle.Render(fmt.Sprintf("%-*s", descW, truncStr(e.Description, descW))))
		recent.WriteString(mutedStyle.Render(" "))
		recent.WriteString(amountStyle.Render(amt))
		recent.WriteString("\n")
		recent.WriteString(mutedStyle.Render(fmt.Sprintf("%s · %s", e.Date, e.Category)))
		if i < len(expenses)-1 {
			recent.WriteString("\n")
		}
	}

	var events strings.Builder
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	for i, ev := range campus.Upcoming(campus.Events(), 4) {
		if i > 0 {
			events.WriteString("\n")
		}
		events.WriteString(rowStyle.Render(truncStr(ev.Name, components.CardInnerWidth(widths[1]))))
		events.WriteString("\n")
		events.WriteString(mutedStyle.Render(fmt.Sprintf("%s %s · %s", ev.Date, ev.Time, ev.Location)))
	}
	if urgent := campus.UrgentCount(campus.Alerts()); urgent > 0 {
		warn := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
		events.WriteString("\n\n")
		events.WriteString(warn.Render(fmt.Sprintf("%d urgent campus alerts", urgent)))
		events.WriteString(accentStyle.Render("  (Connect tab)"))
	}

	row := components.CardRow([]string{
		components.ContentCard("Recent Transactions", recent.String(), widths[0]),
		components.ContentCard("Upcoming Events", events.String(), widths[1]),
	})

	return metrics + "\n" + row
}

func truncStr(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 1 {
		return string(r[:limit])
	}
	return string(r[:limit-1]) + "…"
}
