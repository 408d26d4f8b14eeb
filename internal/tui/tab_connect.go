package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/scholarhub/internal/campus"
	"github.com/theirongolddev/scholarhub/internal/tui/components"
	"github.com/theirongolddev/scholarhub/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderConnectTab(cw int) string {
	t := theme.Active
	widths := components.LayoutRow(cw, 2)

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	urgentStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
	msgStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var alerts strings.Builder
	for i, al := range campus.Alerts() {
		if i > 0 {
			alerts.WriteString("\n\n")
		}
		if al.Urgent {
			alerts.WriteString(urgentStyle.Render("URGENT "))
		}
		alerts.WriteString(titleStyle.Render(al.Title))
		alerts.WriteString("\n")
		alerts.WriteString(msgStyle.Render(al.Message))
		alerts.WriteString("\n")
		alerts.WriteString(dateStyle.Render(al.Date))
	}

	phoneStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	var contacts strings.Builder
	inner := components.CardInnerWidth(widths[1])
	for i, c := range campus.Contacts() {
		if i > 0 {
			contacts.WriteString("\n")
		}
		nameW := inner - lipgloss.Width(c.Phone) - 1
		if nameW < 8 {
			nameW = 8
		}
		contacts.WriteString(titleStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(c.Service, nameW))))
		contacts.WriteString(msgStyle.Render(" "))
		contacts.WriteString(phoneStyle.Render(c.Phone))
	}

	return components.CardRow([]string{
		components.ContentCard("Campus Alerts", alerts.String(), widths[0]),
		components.ContentCard("Emergency Contacts", contacts.String(), widths[1]),
	})
}
