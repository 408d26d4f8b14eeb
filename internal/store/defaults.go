package store

import (
	"github.com/theirongolddev/scholarhub/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultState returns the first-run state: the starter budget plan, five demo
// expenses and three savings goals. Each call returns fresh values.
func DefaultState() model.AppState {
	d := decimal.NewFromInt
	return model.AppState{
		BudgetPlan: model.BudgetPlan{
			TotalBudget: d(30000),
			Categories: map[model.Category]decimal.Decimal{
				model.CategoryFood:          d(8000),
				model.CategoryTransport:     d(4000),
				model.CategoryBooks:         d(5000),
				model.CategoryEntertainment: d(3000),
				model.CategoryHealth:        d(2000),
				model.CategoryClothing:      d(2000),
				model.CategoryUtilities:     d(3000),
				model.CategoryOther:         d(3000),
			},
		},
		Expenses: []model.Expense{
			{ID: "1", Date: "2024-12-14", Description: "Lunch at cafeteria", Category: model.CategoryFood, Amount: d(250)},
			{ID: "2", Date: "2024-12-13", Description: "Bus fare", Category: model.CategoryTransport, Amount: d(50)},
			{ID: "3", Date: "2024-12-12", Description: "Course textbook", Category: model.CategoryBooks, Amount: d(1500)},
			{ID: "4", Date: "2024-12-11", Description: "Movie tickets", Category: model.CategoryEntertainment, Amount: d(600)},
			{ID: "5", Date: "2024-12-10", Description: "Dinner with friends", Category: model.CategoryFood, Amount: d(800)},
		},
		SavingsGoals: []model.SavingsGoal{
			{ID: "1", Name: "Laptop Fund", Target: d(50000), Current: d(15000)},
			{ID: "2", Name: "Summer Trip", Target: d(20000), Current: d(8000)},
			{ID: "3", Name: "Emergency Fund", Target: d(10000), Current: d(6000)},
		},
	}
}
