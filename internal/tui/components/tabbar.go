package components

import (
	"strings"

	"github.com/theirongolddev/scholarhub/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Home", Key: 'h', KeyPos: 0},
	{Name: "Money", Key: 'm', KeyPos: 0},
	{Name: "Time", Key: 't', KeyPos: 0},
	{Name: "Connect", Key: 'o', KeyPos: 1},
}

// TabVisualWidth is the rendered width of a tab, including its padding.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

func renderTab(tab Tab, active bool) string {
	t := theme.Active

	if active {
		return lipgloss.NewStyle().
			Foreground(t.AccentBright).
			Background(t.SurfaceHover).
			Bold(true).
			Padding(0, 1).
			Render(tab.Name)
	}

	inactive := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	key := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true).Underline(true)
	pad := lipgloss.NewStyle().Background(t.Surface)

	before := tab.Name[:tab.KeyPos]
	letter := string(tab.Name[tab.KeyPos])
	after := tab.Name[tab.KeyPos+1:]
	return pad.Render(" ") + inactive.Render(before) + key.Render(letter) + inactive.Render(after) + pad.Render(" ")
}

// RenderTabBar renders the tab bar with the given active index, followed by
// right-aligned text such as the signed-in user.
func RenderTabBar(activeIdx int, width int, right string) string {
	t := theme.Active
	sep := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface).Render("│")

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		parts[i] = renderTab(tab, i == activeIdx)
	}
	left := strings.Join(parts, sep)

	rightStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}
	fill := lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", gap))
	return left + fill + rightStyle.Render(right+" ")
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
