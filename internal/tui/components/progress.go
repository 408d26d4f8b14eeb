package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/scholarhub/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a block bar for a 0-100 percentage toward a goal.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	frac := clamp01(pct / 100)
	filled := int(frac * float64(width))

	var barColor lipgloss.Color
	switch {
	case frac >= 0.8:
		barColor = t.GreenBright
	case frac >= 0.5:
		barColor = t.Green
	default:
		barColor = t.Accent
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))

	return b.String() + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%.0f%%", pct))
}

// ColorForPct returns green/yellow/orange/red for a 0-100 budget utilization.
func ColorForPct(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct > 100:
		return t.Red
	case pct >= 90:
		return t.Orange
	case pct >= 70:
		return t.Yellow
	default:
		return t.Green
	}
}

// UsageBar renders a labeled spend-vs-plan bar. pct is spent over planned as a
// 0-100 percentage and may exceed 100.
func UsageBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active
	color := ColorForPct(pct)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, truncate(label, labelW))) +
		spaceStyle.Render(" ") +
		bar.ViewAs(clamp01(pct/100)) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%4.0f%%", pct))
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 1 {
		return string(r[:limit])
	}
	return string(r[:limit-1]) + "…"
}
