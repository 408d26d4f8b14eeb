// Package cmd implements the scholarhub CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/scholarhub/internal/config"
	"github.com/theirongolddev/scholarhub/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    State database: %s\n", cfg.StatePath())
	fmt.Printf("    Recent limit:   %d\n", cfg.General.RecentLimit)
	idStyle := cfg.General.IDStyle
	if idStyle == "" {
		idStyle = config.IDStyleUUID
	}
	fmt.Printf("    Expense ids:    %s\n", idStyle)
	fmt.Println()

	fmt.Println("  [Profile]")
	if cfg.Profile.Email != "" {
		fmt.Printf("    Email: %s\n", cfg.Profile.Email)
	} else {
		fmt.Println("    Email: not signed in")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency: %s\n", cfg.Display.Currency)
	fmt.Println()

	statePath := flagStatePath
	if statePath == "" {
		statePath = cfg.StatePath()
	}
	fmt.Println("  [State]")
	if err := writeStateInfo(os.Stdout, statePath); err != nil {
		fmt.Printf("    Unavailable: %v\n", err)
	}
	fmt.Println()

	fmt.Println("  Run `scholarhub setup` to reconfigure.")
	return nil
}

func writeStateInfo(w io.Writer, path string) error {
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	saved, ok, err := db.UpdatedAt(store.StateKey)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(w, "    Last saved: %s\n", saved.Local().Format(time.DateTime))
	} else {
		fmt.Fprintln(w, "    Last saved: never (starter data)")
	}

	keys, err := db.Keys()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		fmt.Fprintf(w, "    Keys:       %s\n", strings.Join(keys, ", "))
	}
	return nil
}
