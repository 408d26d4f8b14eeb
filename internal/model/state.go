// Package model defines the domain types persisted and reconciled by scholarhub.
package model

import "github.com/shopspring/decimal"

func init() {
	// The durable slot stores amounts as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// BudgetPlan is the monthly budget: a total and per-category allocations.
// A category missing from Categories is allocated zero.
type BudgetPlan struct {
	TotalBudget decimal.Decimal              `json:"totalBudget"`
	Categories  map[Category]decimal.Decimal `json:"categories"`
}

// Allocation returns the planned amount for a category.
func (p BudgetPlan) Allocation(c Category) decimal.Decimal {
	if v, ok := p.Categories[c]; ok {
		return v
	}
	return decimal.Zero
}

// Clone returns a copy whose category map is not shared with p.
func (p BudgetPlan) Clone() BudgetPlan {
	cats := make(map[Category]decimal.Decimal, len(p.Categories))
	for k, v := range p.Categories {
		cats[k] = v
	}
	return BudgetPlan{TotalBudget: p.TotalBudget, Categories: cats}
}

// Expense is one recorded spend. Expenses are immutable once logged.
type Expense struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
}

// SavingsGoal tracks progress toward a savings target. Current may exceed Target.
type SavingsGoal struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Target  decimal.Decimal `json:"target"`
	Current decimal.Decimal `json:"current"`
}

// AppState is the persisted root. Expenses are ordered newest first.
type AppState struct {
	BudgetPlan   BudgetPlan    `json:"budgetPlan"`
	Expenses     []Expense     `json:"expenses"`
	SavingsGoals []SavingsGoal `json:"savingsGoals"`
}
