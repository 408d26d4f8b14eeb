package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/scholarhub/internal/campus"
	"github.com/theirongolddev/scholarhub/internal/tui/components"
	"github.com/theirongolddev/scholarhub/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTimeTab(cw int) string {
	t := theme.Active

	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pillAccent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	food := "off"
	if a.freeFoodOnly {
		food = "on"
	}
	filters := pillStyle.Render(" Category ") + pillAccent.Render(a.eventCategory) +
		pillStyle.Render("  │  Free food ") + pillAccent.Render(food) + pillStyle.Render(" ")

	events := campus.FilterEvents(campus.Events(), a.eventCategory, a.freeFoodOnly)

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	tagStyle := lipgloss.NewStyle().Foreground(t.Magenta).Background(t.Surface)
	foodStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)

	var b strings.Builder
	if len(events) == 0 {
		b.WriteString(metaStyle.Render("No events match these filters."))
	}
	for i, ev := range events {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(nameStyle.Render(ev.Name))
		b.WriteString(metaStyle.Render("  "))
		b.WriteString(tagStyle.Render(ev.Category))
		if ev.HasFreeFood {
			b.WriteString(foodStyle.Render("  free food"))
		}
		b.WriteString("\n")
		b.WriteString(metaStyle.Render(fmt.Sprintf("%s · %s · %s", ev.Date, ev.Time, ev.Location)))
	}

	title := fmt.Sprintf("Campus Events (%d)", len(events))
	return filters + "\n" + components.ContentCard(title, b.String(), cw)
}
