package cmd

import (
	"fmt"

	"github.com/theirongolddev/scholarhub/internal/budget"
	"github.com/theirongolddev/scholarhub/internal/cli"

	"github.com/spf13/cobra"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Savings goals and progress",
	RunE:  runGoals,
}

func init() {
	rootCmd.AddCommand(goalsCmd)
}

func runGoals(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	goals := e.sess.State().SavingsGoals
	if len(goals) == 0 {
		fmt.Println("\n  No savings goals yet.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVINGS GOALS"))
	fmt.Println()

	rows := make([][]string, 0, len(goals)+2)
	for _, g := range goals {
		rows = append(rows, []string{g.Name, e.money(g.Current), e.money(g.Target), cli.FormatPercent(budget.GoalProgress(g))})
	}
	snap := e.sess.Snapshot()
	rows = append(rows, []string{"---"}, []string{"All Goals", e.money(snap.SavingsCurrent), e.money(snap.SavingsTarget), cli.FormatPercent(snap.SavingsPct)})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Goal", "Saved", "Target", "Progress"},
		Rows:    rows,
	}))
	fmt.Println()
	for _, g := range goals {
		fmt.Printf("  %-16s %s\n", g.Name, cli.RenderProgressBar(budget.GoalProgress(g), 30))
	}
	return nil
}
