// Package tui provides the interactive Bubble Tea dashboard for scholarhub.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/scholarhub/internal/campus"
	"github.com/theirongolddev/scholarhub/internal/cli"
	"github.com/theirongolddev/scholarhub/internal/config"
	"github.com/theirongolddev/scholarhub/internal/session"
	"github.com/theirongolddev/scholarhub/internal/tui/components"
	"github.com/theirongolddev/scholarhub/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	tabHome = iota
	tabMoney
	tabTime
	tabConnect
)

type formKind int

const (
	formNone formKind = iota
	formGate
	formExpense
	formPlan
)

// App is the root Bubble Tea model.
type App struct {
	sess *session.Session
	cfg  config.Config
	log  *zap.Logger

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Active huh form. Values live behind pointers so the form's bindings
	// survive App being copied through Update.
	form     *huh.Form
	formKind formKind
	gate     *gateValues
	expense  *expenseValues
	plan     *planValues
	planSave *bool

	// Time tab filters
	eventCategory string
	freeFoodOnly  bool

	// One-line feedback in the status bar, cleared on the next key
	flash    string
	flashErr bool
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates the TUI over an open session. The sign-in gate is shown
// first, prefilled with the last email used.
func NewApp(sess *session.Session, cfg config.Config, log *zap.Logger) App {
	if log == nil {
		log = zap.NewNop()
	}
	a := App{
		sess:          sess,
		cfg:           cfg,
		log:           log,
		eventCategory: campus.AllCategories,
	}
	a.openGate(cfg.Profile.Email, "")
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.form != nil {
		cmds = append(cmds, a.form.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(formWidth(msg.Width))
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	// Forms intercept everything else while open
	if a.form != nil {
		return a.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if a.showHelp || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return a, nil
		}
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	a.flash, a.flashErr = "", false

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch a.activeTab {
	case tabHome, tabMoney:
		switch key {
		case "a":
			return a, a.openExpenseForm()
		case "e":
			if a.activeTab == tabMoney {
				return a, a.openPlanForm()
			}
		}
	case tabTime:
		switch key {
		case "c":
			a.eventCategory = campus.NextCategory(a.eventCategory)
			return a, nil
		case "f":
			a.freeFoodOnly = !a.freeFoodOnly
			return a, nil
		}
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		if r := []rune(key); len(r) == 1 {
			if idx := components.TabIdxByKey(r[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		return a.finishForm()
	case huh.StateAborted:
		if a.formKind == formGate {
			return a, tea.Quit
		}
		a.closeForm()
		a.flash = "Cancelled"
		return a, nil
	}
	return a, cmd
}

func (a App) finishForm() (tea.Model, tea.Cmd) {
	kind := a.formKind
	a.closeForm()

	switch kind {
	case formGate:
		return a.finishGate()
	case formExpense:
		return a.finishExpense()
	case formPlan:
		return a.finishPlan()
	}
	return a, nil
}

func (a *App) closeForm() {
	a.form = nil
	a.formKind = formNone
}

func (a *App) showForm(kind formKind, f *huh.Form) tea.Cmd {
	a.formKind = kind
	a.form = f.WithTheme(huh.ThemeBase16()).WithShowHelp(true)
	if a.width > 0 {
		a.form = a.form.WithWidth(formWidth(a.width))
	}
	return a.form.Init()
}

func (a *App) setFlash(msg string, isErr bool) {
	a.flash, a.flashErr = msg, isErr
}

func (a App) money(d decimal.Decimal) string {
	return cli.FormatMoney(d, a.cfg.Display.Currency)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func formWidth(w int) int {
	if w > 64 {
		return 60
	}
	return w - 4
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.form != nil {
		return a.viewForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  scholarhub needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewForm() string {
	t := theme.Active

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var title string
	switch a.formKind {
	case formGate:
		title = "Student organizer"
	case formExpense:
		title = "Add expense"
	case formPlan:
		title = "Edit budget plan"
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)

	body := logoStyle.Render("◈ ScholarHub") + subtitleStyle.Render(" · "+title) + "\n\n" + a.form.View()
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		name     string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"h m t o", "Jump to tab"},
			{"← → tab", "Previous / Next tab"},
		}},
		{"Home & Money", []struct{ key, desc string }{
			{"a", "Add expense"},
			{"e", "Edit budget plan (Money)"},
		}},
		{"Time", []struct{ key, desc string }{
			{"c", "Cycle event category"},
			{"f", "Toggle free food only"},
		}},
		{"General", []struct{ key, desc string }{
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.name))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	user := ""
	if id := a.sess.User(); id.SignedIn() {
		user = id.Initials() + " · " + id.Email
	}
	header := components.RenderTabBar(a.activeTab, w, user)

	var hints string
	switch a.activeTab {
	case tabHome:
		hints = "[a]dd expense"
	case tabMoney:
		hints = "[a]dd expense  [e]dit plan"
	case tabTime:
		hints = "[c]ategory  [f]ree food"
	}
	statusBar := components.RenderStatusBar(w, hints, a.flash, a.flashErr)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabHome:
		content = a.renderHomeTab(cw)
	case tabMoney:
		content = a.renderMoneyTab(cw)
	case tabTime:
		content = a.renderTimeTab(cw)
	case tabConnect:
		content = a.renderConnectTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow the widths RenderTabBar uses.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // separator
	}
	return -1
}
