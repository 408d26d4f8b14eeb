package cmd

import (
	"fmt"

	"github.com/theirongolddev/scholarhub/internal/campus"
	"github.com/theirongolddev/scholarhub/internal/cli"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Planned vs spent, per category",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	lines := e.sess.Lines()
	snap := e.sess.Snapshot()

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET  Planned vs Spent"))
	fmt.Println()

	rows := make([][]string, 0, len(lines)+2)
	var over []string
	for _, l := range lines {
		rows = append(rows, []string{
			string(l.Category),
			e.money(l.Planned),
			e.money(l.Spent),
			cli.FormatDiff(l.Diff, e.cfg.Display.Currency),
			cli.FormatPercent(l.UsedPct),
		})
		if l.Overspent {
			over = append(over, fmt.Sprintf("%s over by %s", l.Category, e.money(l.Diff.Neg())))
		}
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		e.money(snap.TotalBudget),
		e.money(snap.TotalSpent),
		cli.FormatDiff(snap.Remaining, e.cfg.Display.Currency),
		"",
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Planned", "Spent", "Remaining", "Used"},
		Rows:    rows,
	}))

	for _, msg := range over {
		fmt.Println("  " + cli.RenderWarning(msg))
	}
	if snap.Overspent {
		fmt.Println("  " + cli.RenderWarning("total spending exceeds the budget"))
	}
	fmt.Println()

	subs := campus.Subscriptions()
	subRows := make([][]string, 0, len(subs))
	monthly := decimal.Zero
	for _, s := range subs {
		discount := "no"
		if s.HasStudentDiscount {
			discount = "yes"
		}
		subRows = append(subRows, []string{s.Name, e.money(s.Amount), discount})
		monthly = monthly.Add(s.Amount)
	}
	subRows = append(subRows, []string{"---"}, []string{"Monthly", e.money(monthly), ""})
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Subscription Audit",
		Headers: []string{"Service", "Monthly", "Student Discount"},
		Rows:    subRows,
	}))

	return nil
}
