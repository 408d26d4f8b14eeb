package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/scholarhub/internal/budget"
	"github.com/theirongolddev/scholarhub/internal/cli"
	"github.com/theirongolddev/scholarhub/internal/model"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the budget plan",
	RunE:  runPlan,
}

var planSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Edit the total budget and category allocations",
	Long: `Edit the budget plan. Allocations are given as "Category=amount" and may be
repeated. Amounts that do not parse are taken as 0. The edit is rejected when
the allocations add up to more than the total budget.`,
	Example: `  scholarhub plan set --total 32000 --alloc "Food & Dining=9000" --alloc "Other=4000"`,
	RunE:    runPlanSet,
}

var (
	planTotal  string
	planAllocs []string
)

func init() {
	planSetCmd.Flags().StringVarP(&planTotal, "total", "t", "", "New total budget")
	planSetCmd.Flags().StringArrayVarP(&planAllocs, "alloc", "a", nil, `Category allocation as "Category=amount" (repeatable)`)

	planCmd.AddCommand(planSetCmd)
	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	printDraft(e, e.sess.EditPlan(), "BUDGET PLAN")
	return nil
}

func runPlanSet(_ *cobra.Command, _ []string) error {
	if planTotal == "" && len(planAllocs) == 0 {
		return errors.New("nothing to change: pass --total and/or --alloc")
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	draft := e.sess.EditPlan()
	if planTotal != "" {
		draft = budget.SetTotalBudget(draft, planTotal)
	}
	for _, a := range planAllocs {
		label, amount, ok := strings.Cut(a, "=")
		if !ok {
			return fmt.Errorf("invalid allocation %q: want Category=amount", a)
		}
		c, ok := model.ParseCategory(label)
		if !ok {
			return fmt.Errorf("unknown category %q (choose one of: %s)", label, categoryList())
		}
		draft = budget.SetCategoryAllocation(draft, c, amount)
	}

	if _, err := e.sess.CommitPlan(draft); err != nil {
		if errors.Is(err, budget.ErrOverAllocated) {
			printDraft(e, draft, "BUDGET PLAN  (not saved)")
		}
		return err
	}

	printDraft(e, e.sess.EditPlan(), "BUDGET PLAN  saved")
	return nil
}

func printDraft(e *env, d budget.Draft, title string) {
	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	rows := make([][]string, 0, len(model.Categories)+4)
	for _, c := range model.Categories {
		rows = append(rows, []string{string(c), e.money(d.Categories[c])})
	}
	remaining := budget.RemainingToAllocate(d)
	rows = append(rows,
		[]string{"---"},
		[]string{"Allocated", e.money(d.Allocated())},
		[]string{"Total Budget", e.money(d.TotalBudget)},
		[]string{"Left to Allocate", e.money(remaining)},
	)
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Allocation"},
		Rows:    rows,
	}))
	if remaining.IsNegative() {
		fmt.Println("  " + cli.RenderWarning("allocations exceed the total budget"))
	}
}
