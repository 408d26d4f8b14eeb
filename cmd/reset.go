package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/scholarhub/internal/store"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace all data with the starter budget, expenses and goals",
	RunE:  runReset,
}

var resetYes bool

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Confirm the reset")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	if !resetYes {
		return errors.New("reset discards every expense and plan edit; rerun with --yes to confirm")
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.db.Delete(store.StateKey); err != nil {
		return fmt.Errorf("clearing stored state: %w", err)
	}
	if err := e.sess.Reset(); err != nil {
		return err
	}
	fmt.Println("  State reset to defaults.")
	return nil
}
