package cmd

import (
	"fmt"

	"github.com/theirongolddev/scholarhub/internal/config"
	"github.com/theirongolddev/scholarhub/internal/logging"
	"github.com/theirongolddev/scholarhub/internal/tui"
	"github.com/theirongolddev/scholarhub/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// The alt screen owns stderr, so log to a file instead
	log, err := logging.NewFile(config.LogPath(), flagVerbose)
	if err != nil {
		log = zap.NewNop()
	}

	flagQuiet = true
	e, err := openEnvWithLogger(log)
	if err != nil {
		return err
	}
	defer e.Close()

	if !theme.SetActive(e.cfg.Appearance.Theme) {
		log.Warn("unknown theme, using default", zap.String("theme", e.cfg.Appearance.Theme))
	}

	// Force TrueColor so background styling always produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(e.sess, e.cfg, log)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
