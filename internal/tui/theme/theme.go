// Package theme holds the color palettes of the scholarhub dashboard. The
// active palette is chosen from the config file at startup.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps the dashboard's color roles to concrete colors.
type Theme struct {
	Name         string
	Background   lipgloss.Color // app background
	Surface      lipgloss.Color // cards and panels
	SurfaceHover lipgloss.Color // active tab
	Border       lipgloss.Color
	BorderAccent lipgloss.Color // focused card
	TextDim      lipgloss.Color // hints
	TextMuted    lipgloss.Color // labels
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color
	AccentBright lipgloss.Color

	// Budget states: Green under plan, Yellow and Orange approaching it,
	// Red over it.
	Green       lipgloss.Color
	GreenBright lipgloss.Color
	Yellow      lipgloss.Color
	Orange      lipgloss.Color
	Red         lipgloss.Color

	// Event and alert highlights.
	Magenta lipgloss.Color
	Cyan    lipgloss.Color
}

// CampusIndigo is the default, after the indigo palette of the scholarhub web app.
var CampusIndigo = Theme{
	Name:         "campus-indigo",
	Background:   lipgloss.Color("#0F0E24"),
	Surface:      lipgloss.Color("#1E1B4B"),
	SurfaceHover: lipgloss.Color("#312E81"),
	Border:       lipgloss.Color("#3730A3"),
	BorderAccent: lipgloss.Color("#818CF8"),
	TextDim:      lipgloss.Color("#6366F1"),
	TextMuted:    lipgloss.Color("#A5B4FC"),
	TextPrimary:  lipgloss.Color("#EEF2FF"),
	Accent:       lipgloss.Color("#818CF8"),
	AccentBright: lipgloss.Color("#C7D2FE"),
	Green:        lipgloss.Color("#16A34A"),
	GreenBright:  lipgloss.Color("#4ADE80"),
	Yellow:       lipgloss.Color("#FACC15"),
	Orange:       lipgloss.Color("#F59E0B"),
	Red:          lipgloss.Color("#DC2626"),
	Magenta:      lipgloss.Color("#DB2777"),
	Cyan:         lipgloss.Color("#22D3EE"),
}

// FlexokiDark is a warm paper-toned dark palette.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	SurfaceHover: lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Green:        lipgloss.Color("#879A39"),
	GreenBright:  lipgloss.Color("#A3B859"),
	Yellow:       lipgloss.Color("#D0A215"),
	Orange:       lipgloss.Color("#DA702C"),
	Red:          lipgloss.Color("#D14D41"),
	Magenta:      lipgloss.Color("#CE5D97"),
	Cyan:         lipgloss.Color("#24837B"),
}

// Terminal sticks to the 16 ANSI colors.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	Green:        lipgloss.Color("2"),
	GreenBright:  lipgloss.Color("10"),
	Yellow:       lipgloss.Color("11"),
	Orange:       lipgloss.Color("3"),
	Red:          lipgloss.Color("1"),
	Magenta:      lipgloss.Color("5"),
	Cyan:         lipgloss.Color("6"),
}

// Default is used when the config names no known theme.
var Default = CampusIndigo

// Active is the palette every component renders with.
var Active = Default

// All lists the selectable palettes, default first.
var All = []Theme{CampusIndigo, FlexokiDark, Terminal}

// Names lists theme names in the order of All.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// Lookup finds a palette by name.
func Lookup(name string) (Theme, bool) {
	for _, t := range All {
		if t.Name == name {
			return t, true
		}
	}
	return Default, false
}

// SetActive switches the active palette. An unknown name selects Default and
// reports false.
func SetActive(name string) bool {
	t, ok := Lookup(name)
	Active = t
	return ok
}
