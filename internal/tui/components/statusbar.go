package components

import (
	"strings"

	"github.com/theirongolddev/scholarhub/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. hints are per-tab key hints;
// flash is a transient message, shown in red when isErr is set.
func RenderStatusBar(width int, hints, flash string, isErr bool) string {
	t := theme.Active

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	flashStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface).Bold(true)
	if isErr {
		flashStyle = flashStyle.Foreground(t.Red)
	}

	left := " " + hints + "  [?]help  [q]uit"
	right := ""
	if flash != "" {
		right = flashStyle.Render(flash + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	return base.Render(left+strings.Repeat(" ", padding)) + right
}
