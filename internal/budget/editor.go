package budget

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/scholarhub/internal/model"

	"github.com/shopspring/decimal"
)

// ErrOverAllocated is matched by errors.Is for any OverAllocatedError.
var ErrOverAllocated = errors.New("category allocations exceed total budget")

// OverAllocatedError reports a draft whose allocations exceed its total.
type OverAllocatedError struct {
	Remaining decimal.Decimal // negative: the amount over-allocated
}

func (e *OverAllocatedError) Error() string {
	return fmt.Sprintf("over-allocated by %s", e.Remaining.Neg().StringFixed(2))
}

// Is lets errors.Is(err, ErrOverAllocated) match.
func (e *OverAllocatedError) Is(target error) bool {
	return target == ErrOverAllocated
}

// Draft is an in-progress plan edit. It is never applied to the committed plan
// until Commit succeeds.
type Draft struct {
	TotalBudget decimal.Decimal
	Categories  map[model.Category]decimal.Decimal
}

// ProposeEdit starts a draft as a copy of the current plan.
func ProposeEdit(current model.BudgetPlan) Draft {
	p := current.Clone()
	return Draft{TotalBudget: p.TotalBudget, Categories: p.Categories}
}

// SetCategoryAllocation returns a draft with one allocation replaced. Text that
// does not parse as an in-range amount is taken as 0.
func SetCategoryAllocation(d Draft, c model.Category, text string) Draft {
	next := d.clone()
	next.Categories[c] = coerce(text)
	return next
}

// SetTotalBudget returns a draft with the total replaced, coercing like
// SetCategoryAllocation.
func SetTotalBudget(d Draft, text string) Draft {
	next := d.clone()
	next.TotalBudget = coerce(text)
	return next
}

// Allocated sums the draft's category allocations.
func (d Draft) Allocated() decimal.Decimal {
	sum := decimal.Zero
	for _, v := range d.Categories {
		sum = sum.Add(v)
	}
	return sum
}

// RemainingToAllocate is the total minus all allocations. Negative means
// over-allocated.
func RemainingToAllocate(d Draft) decimal.Decimal {
	return d.TotalBudget.Sub(d.Allocated())
}

// Commit turns the draft into the new plan. It fails with an
// *OverAllocatedError when allocations exceed the total; an exact match is
// allowed.
func Commit(d Draft) (model.BudgetPlan, error) {
	remaining := RemainingToAllocate(d)
	if remaining.IsNegative() {
		return model.BudgetPlan{}, &OverAllocatedError{Remaining: remaining}
	}
	c := d.clone()
	return model.BudgetPlan{TotalBudget: c.TotalBudget, Categories: c.Categories}, nil
}

func (d Draft) clone() Draft {
	cats := make(map[model.Category]decimal.Decimal, len(d.Categories))
	for k, v := range d.Categories {
		cats[k] = v
	}
	return Draft{TotalBudget: d.TotalBudget, Categories: cats}
}

func coerce(text string) decimal.Decimal {
	v, err := model.ParseAmount(text)
	if err != nil {
		return decimal.Zero
	}
	return v
}
