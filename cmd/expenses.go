package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/scholarhub/internal/cli"
	"github.com/theirongolddev/scholarhub/internal/ledger"
	"github.com/theirongolddev/scholarhub/internal/model"

	"github.com/spf13/cobra"
)

var expensesCmd = &cobra.Command{
	Use:     "expenses",
	Aliases: []string{"exp"},
	Short:   "List recent expenses",
	RunE:    runExpenses,
}

var addExpenseCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense",
	RunE:  runAddExpense,
}

var (
	expensesLimit int
	addDate       string
	addDesc       string
	addCategory   string
	addAmount     string
)

func init() {
	expensesCmd.Flags().IntVarP(&expensesLimit, "limit", "l", 0, "Number of expenses to show (default from config)")

	addExpenseCmd.Flags().StringVar(&addDate, "date", "", "Date as YYYY-MM-DD (default today)")
	addExpenseCmd.Flags().StringVarP(&addDesc, "desc", "d", "", "What the money was spent on")
	addExpenseCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category label, e.g. \"Food & Dining\"")
	addExpenseCmd.Flags().StringVarP(&addAmount, "amount", "a", "", "Amount spent")

	expensesCmd.AddCommand(addExpenseCmd)
	rootCmd.AddCommand(expensesCmd)
}

func runExpenses(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	state := e.sess.State()
	if len(state.Expenses) == 0 {
		fmt.Println("\n  No expenses recorded yet.")
		fmt.Println("  Add one with `scholarhub expenses add`.")
		return nil
	}

	limit := expensesLimit
	if limit <= 0 {
		limit = e.cfg.General.RecentLimit
	}
	recent := ledger.Recent(state.Expenses, limit)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("EXPENSES  showing %d of %d", len(recent), len(state.Expenses))))
	fmt.Println()

	rows := make([][]string, 0, len(recent))
	for _, x := range recent {
		rows = append(rows, []string{x.Date, x.Description, string(x.Category), e.money(x.Amount)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Description", "Category", "Amount"},
		Rows:    rows,
	}))
	return nil
}

func runAddExpense(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	exp, err := e.sess.AddExpense(ledger.Candidate{
		Date:        addDate,
		Description: addDesc,
		Category:    addCategory,
		Amount:      addAmount,
	})
	if err != nil {
		var verr *ledger.ValidationError
		if errors.As(err, &verr) && verr.Field == ledger.FieldCategory {
			return fmt.Errorf("%w (choose one of: %s)", err, categoryList())
		}
		return err
	}

	snap := e.sess.Snapshot()
	fmt.Printf("  Added %s  %s  %s\n", exp.Description, exp.Category, e.money(exp.Amount))
	fmt.Printf("  Remaining budget: %s\n", e.money(snap.Remaining))
	if snap.Overspent {
		fmt.Println("  " + cli.RenderWarning("you are over budget"))
	}
	return nil
}

func categoryList() string {
	labels := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		labels[i] = string(c)
	}
	return strings.Join(labels, ", ")
}
