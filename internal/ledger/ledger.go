// Package ledger maintains the expense log: validated, newest-first appends.
package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/scholarhub/internal/model"
)

// Fields named by ValidationError.
const (
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldAmount      = "amount"
)

// ErrValidation is matched by errors.Is for any ValidationError.
var ErrValidation = errors.New("expense validation failed")

// ValidationError names the first missing or invalid candidate field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Candidate is an expense as entered in a form, before validation.
type Candidate struct {
	Date        string
	Description string
	Category    string
	Amount      string
}

// Append validates c and returns a new log with the expense at the head.
// On failure the original log is returned unchanged with a *ValidationError.
// The input slice is never modified.
func Append(log []model.Expense, c Candidate, ids IDGenerator) ([]model.Expense, model.Expense, error) {
	exp, err := build(c, ids)
	if err != nil {
		return log, model.Expense{}, err
	}

	next := make([]model.Expense, 0, len(log)+1)
	next = append(next, exp)
	next = append(next, log...)
	return next, exp, nil
}

// Recent returns up to n of the newest expenses.
func Recent(log []model.Expense, n int) []model.Expense {
	if n < 0 || n >= len(log) {
		return log
	}
	return log[:n]
}

func build(c Candidate, ids IDGenerator) (model.Expense, error) {
	desc := strings.TrimSpace(c.Description)
	if desc == "" {
		return model.Expense{}, &ValidationError{Field: FieldDescription, Reason: "required"}
	}

	if strings.TrimSpace(c.Category) == "" {
		return model.Expense{}, &ValidationError{Field: FieldCategory, Reason: "required"}
	}
	cat, ok := model.ParseCategory(c.Category)
	if !ok {
		return model.Expense{}, &ValidationError{Field: FieldCategory, Reason: fmt.Sprintf("unknown category %q", c.Category)}
	}

	amountText := strings.TrimSpace(c.Amount)
	if amountText == "" {
		return model.Expense{}, &ValidationError{Field: FieldAmount, Reason: "required"}
	}
	amount, err := model.ParseAmount(amountText)
	if err != nil {
		return model.Expense{}, &ValidationError{Field: FieldAmount, Reason: err.Error()}
	}

	date := strings.TrimSpace(c.Date)
	if date == "" {
		date = today(ids)
	}

	return model.Expense{
		ID:          ids.NewID(),
		Date:        date,
		Description: desc,
		Category:    cat,
		Amount:      amount,
	}, nil
}

// Clock is implemented by generators that also supply the default expense date.
type Clock interface {
	Now() time.Time
}

func today(ids IDGenerator) string {
	if c, ok := ids.(Clock); ok {
		return c.Now().Format(time.DateOnly)
	}
	return time.Now().Format(time.DateOnly)
}
