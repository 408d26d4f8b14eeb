package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/scholarhub/internal/config"
	"github.com/theirongolddev/scholarhub/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("  Existing config unreadable (%v), starting from defaults.\n", err)
		cfg = config.DefaultConfig()
	}

	recent := strconv.Itoa(cfg.General.RecentLimit)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to scholarhub!").
				Description("A few settings, then you're ready.\nRun `scholarhub setup` anytime to reconfigure."),
			huh.NewInput().
				Title("University email").
				Description("Prefilled on the sign-in screen.").
				Value(&cfg.Profile.Email),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&cfg.Appearance.Theme),
			huh.NewInput().
				Title("Currency label").
				Value(&cfg.Display.Currency).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("currency label is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Recent transactions to show").
				Options(huh.NewOptions("5", "10", "20")...).
				Value(&recent),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return err
	}

	cfg.Display.Currency = strings.TrimSpace(cfg.Display.Currency)
	if n, err := strconv.Atoi(recent); err == nil {
		cfg.General.RecentLimit = n
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println()
	return nil
}
