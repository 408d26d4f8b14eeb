package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/theirongolddev/scholarhub/internal/budget"
	"github.com/theirongolddev/scholarhub/internal/campus"
	"github.com/theirongolddev/scholarhub/internal/model"
	"github.com/theirongolddev/scholarhub/internal/tui/components"
	"github.com/theirongolddev/scholarhub/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const sparkDays = 14

func (a App) renderMoneyTab(cw int) string {
	t := theme.Active
	state := a.sess.State()
	lines := a.sess.Lines()

	widths := components.LayoutRow(cw, 2)
	leftInner := components.CardInnerWidth(widths[0])

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	redStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)

	labelW := 18
	barW := leftInner - labelW - 7
	if barW < 6 {
		barW = 6
	}

	var plan strings.Builder
	for i, l := range lines {
		if i > 0 {
			plan.WriteString("\n")
		}
		plan.WriteString(components.UsageBar(string(l.Category), l.UsedPct, labelW, barW))
		plan.WriteString("\n")
		detail := fmt.Sprintf("%s of %s", a.money(l.Spent), a.money(l.Planned))
		if l.Overspent {
			plan.WriteString(redStyle.Render(fmt.Sprintf("%s · over by %s", detail, a.money(l.Diff.Neg()))))
		} else {
			plan.WriteString(mutedStyle.Render(fmt.Sprintf("%s · %s left", detail, a.money(l.Diff))))
		}
	}
	if len(lines) == 0 {
		plan.WriteString(mutedStyle.Render("Nothing planned or spent yet. Press e to plan."))
	}

	rightInner := components.CardInnerWidth(widths[1])
	var goals strings.Builder
	for i, g := range state.SavingsGoals {
		if i > 0 {
			goals.WriteString("\n")
		}
		goals.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Render(g.Name))
		goals.WriteString("\n")
		goals.WriteString(components.ProgressBar(budget.GoalProgress(g), rightInner-6))
		goals.WriteString("\n")
		goals.WriteString(mutedStyle.Render(fmt.Sprintf("%s / %s", a.money(g.Current), a.money(g.Target))))
	}

	var subs strings.Builder
	discount := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	for i, s := range campus.Subscriptions() {
		if i > 0 {
			subs.WriteString("\n")
		}
		subs.WriteString(mutedStyle.Render(fmt.Sprintf("%-14s %s", s.Name, a.money(s.Amount))))
		if s.HasStudentDiscount {
			subs.WriteString(discount.Render("  student discount"))
		}
	}

	trend := components.Sparkline(dailySpend(state.Expenses, sparkDays), t.Accent)
	if trend == "" {
		trend = mutedStyle.Render("no spending yet")
	}

	right := lipgloss.JoinVertical(lipgloss.Left,
		components.ContentCard("Savings Goals", goals.String(), widths[1]),
		components.ContentCard("Subscriptions", subs.String(), widths[1]),
		components.ContentCard("Spending by Day", trend, widths[1]),
	)

	return components.CardRow([]string{
		components.ContentCard("Planned vs Spent", plan.String(), widths[0]),
		right,
	})
}

// dailySpend totals spending per date and returns the last n days that have
// any spending, oldest first.
func dailySpend(expenses []model.Expense, n int) []float64 {
	byDate := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		byDate[e.Date] = byDate[e.Date].Add(e.Amount)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	if len(dates) > n {
		dates = dates[len(dates)-n:]
	}

	values := make([]float64, len(dates))
	for i, d := range dates {
		values[i] = byDate[d].InexactFloat64()
	}
	return values
}
