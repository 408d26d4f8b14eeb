package cmd

import (
	"fmt"

	"github.com/theirongolddev/scholarhub/internal/budget"
	"github.com/theirongolddev/scholarhub/internal/campus"
	"github.com/theirongolddev/scholarhub/internal/cli"
	"github.com/theirongolddev/scholarhub/internal/ledger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Dashboard: budget, savings, recent spending and upcoming events",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	state := e.sess.State()
	snap := e.sess.Snapshot()

	title := "SCHOLARHUB"
	if u := e.sess.User(); u.SignedIn() {
		title = fmt.Sprintf("SCHOLARHUB  %s (%s)", u.Email, u.Initials())
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	remaining := e.money(snap.Remaining)
	if snap.Overspent {
		remaining += "  OVERSPENT"
	}

	rows := [][]string{
		{"Total Budget", e.money(snap.TotalBudget)},
		{"Spent", e.money(snap.TotalSpent)},
		{"Remaining", remaining},
		{"---"},
		{"Saved", e.money(snap.SavingsCurrent)},
		{"Savings Target", e.money(snap.SavingsTarget)},
		{"Savings Progress", cli.FormatPercent(snap.SavingsPct)},
		{"---"},
		{"Urgent Alerts", fmt.Sprintf("%d", campus.UrgentCount(campus.Alerts()))},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if snap.TotalBudget.IsPositive() {
		pct := snap.TotalSpent.Div(snap.TotalBudget).Mul(decimal.NewFromInt(100)).InexactFloat64()
		fmt.Printf("  Budget used  %s\n", cli.RenderProgressBar(pct, 30))
	}
	fmt.Printf("  Savings      %s\n\n", cli.RenderProgressBar(budget.SavingsProgress(state.SavingsGoals), 30))

	recent := ledger.Recent(state.Expenses, 5)
	if len(recent) > 0 {
		expRows := make([][]string, 0, len(recent))
		for _, x := range recent {
			expRows = append(expRows, []string{x.Description, x.Date, string(x.Category), e.money(x.Amount)})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Recent Transactions",
			Headers: []string{"Description", "Date", "Category", "Amount"},
			Rows:    expRows,
		}))
		fmt.Println()
	}

	events := campus.Upcoming(campus.Events(), 4)
	evRows := make([][]string, 0, len(events))
	for _, ev := range events {
		evRows = append(evRows, []string{ev.Name, ev.Date, ev.Time, ev.Location})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Upcoming Events",
		Headers: []string{"Event", "Date", "Time", "Location"},
		Rows:    evRows,
	}))

	return nil
}
