// Package budget reconciles the budget plan against the expense log and
// implements the plan editor.
package budget

import (
	"github.com/theirongolddev/scholarhub/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CategoryLine is one row of the planned-vs-spent budget summary.
type CategoryLine struct {
	Category  model.Category
	Planned   decimal.Decimal
	Spent     decimal.Decimal
	Diff      decimal.Decimal // planned - spent, negative when overspent
	UsedPct   float64         // spent / planned * 100, 0 when nothing is planned
	Overspent bool
}

// Snapshot holds the figures shown on the dashboard.
type Snapshot struct {
	TotalBudget    decimal.Decimal
	TotalSpent     decimal.Decimal
	Remaining      decimal.Decimal
	Overspent      bool
	SavingsCurrent decimal.Decimal
	SavingsTarget  decimal.Decimal
	SavingsPct     float64
}

// TotalSpent sums every expense amount. An empty log spends zero.
func TotalSpent(expenses []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// RemainingBudget is the plan total minus everything spent. It goes negative
// on overspend and is never clamped.
func RemainingBudget(plan model.BudgetPlan, expenses []model.Expense) decimal.Decimal {
	return plan.TotalBudget.Sub(TotalSpent(expenses))
}

// CategorySpending groups spend by category. Categories with no expenses are
// absent from the result.
func CategorySpending(expenses []model.Expense) map[model.Category]decimal.Decimal {
	spent := make(map[model.Category]decimal.Decimal)
	for _, e := range expenses {
		spent[e.Category] = spent[e.Category].Add(e.Amount)
	}
	return spent
}

// CategoryDiff returns planned minus spent for every category that is either
// planned or spent. Negative values mean the category is overspent.
func CategoryDiff(plan model.BudgetPlan, spending map[model.Category]decimal.Decimal) map[model.Category]decimal.Decimal {
	diff := make(map[model.Category]decimal.Decimal, len(plan.Categories))
	for c, planned := range plan.Categories {
		diff[c] = planned.Sub(spending[c])
	}
	for c, spent := range spending {
		if _, ok := plan.Categories[c]; !ok {
			diff[c] = spent.Neg()
		}
	}
	return diff
}

// SavingsProgress is total saved over total targeted, as a percentage.
// It is 0 when the targets sum to zero.
func SavingsProgress(goals []model.SavingsGoal) float64 {
	current, target := savingsTotals(goals)
	return percent(current, target)
}

// GoalProgress is one goal's current over target, as a percentage. A goal with
// a zero target reports 0 rather than NaN, matching SavingsProgress.
func GoalProgress(goal model.SavingsGoal) float64 {
	return percent(goal.Current, goal.Target)
}

// Reconcile builds the budget summary rows in category display order. Rows with
// nothing planned and nothing spent are omitted.
func Reconcile(plan model.BudgetPlan, expenses []model.Expense) []CategoryLine {
	spending := CategorySpending(expenses)
	diff := CategoryDiff(plan, spending)

	lines := make([]CategoryLine, 0, len(model.Categories))
	for _, c := range model.Categories {
		planned := plan.Allocation(c)
		spent := spending[c]
		if planned.IsZero() && spent.IsZero() {
			continue
		}
		d, ok := diff[c]
		if !ok {
			d = planned.Sub(spent)
		}
		lines = append(lines, CategoryLine{
			Category:  c,
			Planned:   planned,
			Spent:     spent,
			Diff:      d,
			UsedPct:   percent(spent, planned),
			Overspent: d.IsNegative(),
		})
	}
	return lines
}

// Summarize computes the dashboard snapshot for a state.
func Summarize(state model.AppState) Snapshot {
	current, target := savingsTotals(state.SavingsGoals)
	remaining := RemainingBudget(state.BudgetPlan, state.Expenses)
	return Snapshot{
		TotalBudget:    state.BudgetPlan.TotalBudget,
		TotalSpent:     TotalSpent(state.Expenses),
		Remaining:      remaining,
		Overspent:      remaining.IsNegative(),
		SavingsCurrent: current,
		SavingsTarget:  target,
		SavingsPct:     percent(current, target),
	}
}

func savingsTotals(goals []model.SavingsGoal) (current, target decimal.Decimal) {
	current, target = decimal.Zero, decimal.Zero
	for _, g := range goals {
		current = current.Add(g.Current)
		target = target.Add(g.Target)
	}
	return current, target
}

func percent(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}
