// Package export writes the application state as a spreadsheet or as the raw
// JSON payload kept in the state slot.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/theirongolddev/scholarhub/internal/budget"
	"github.com/theirongolddev/scholarhub/internal/model"
	"github.com/theirongolddev/scholarhub/internal/store"

	"github.com/xuri/excelize/v2"
)

// Sheet names in the exported workbook.
const (
	SheetExpenses = "Expenses"
	SheetBudget   = "Budget"
	SheetSavings  = "Savings"
)

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
}

type styles struct {
	header  int
	data    int
	money   int
	total   int
	warning int
}

// WriteXLSX writes a workbook with one sheet each for the expense log, the
// planned-vs-spent reconciliation and the savings goals.
func WriteXLSX(w io.Writer, state model.AppState) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	st, err := newStyles(f)
	if err != nil {
		return err
	}

	if err := f.SetSheetName("Sheet1", SheetExpenses); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	for _, name := range []string{SheetBudget, SheetSavings} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	if err := writeExpenses(f, st, state.Expenses); err != nil {
		return err
	}
	if err := writeBudget(f, st, state); err != nil {
		return err
	}
	if err := writeSavings(f, st, state.SavingsGoals); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// WriteJSON writes the state exactly as it is persisted, indented.
func WriteJSON(w io.Writer, state model.AppState) error {
	raw, err := store.Encode(state)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("indenting state: %w", err)
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"3AA99F"}, Pattern: 1},
		Alignment: center,
		Border:    thinBorder,
	})
	if err != nil {
		return st, fmt.Errorf("header style: %w", err)
	}
	st.data, err = f.NewStyle(&excelize.Style{Border: thinBorder})
	if err != nil {
		return st, fmt.Errorf("data style: %w", err)
	}
	st.money, err = f.NewStyle(&excelize.Style{Border: thinBorder, NumFmt: 4})
	if err != nil {
		return st, fmt.Errorf("money style: %w", err)
	}
	st.total, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border: thinBorder,
		NumFmt: 4,
	})
	if err != nil {
		return st, fmt.Errorf("total style: %w", err)
	}
	st.warning, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Color: "D14D41"},
		Border: thinBorder,
		NumFmt: 4,
	})
	if err != nil {
		return st, fmt.Errorf("warning style: %w", err)
	}
	return st, nil
}

func writeHeader(f *excelize.File, sheet string, style int, headers []string, widths []float64) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

// setRow writes values starting at column A of row and applies style to every
// cell. Columns listed in moneyCols get moneyStyle instead.
func setRow(f *excelize.File, sheet string, row int, values []any, style, moneyStyle int, moneyCols ...int) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("%s row %d: %w", sheet, row, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(values), row)
	if err := f.SetCellStyle(sheet, cell, last, style); err != nil {
		return err
	}
	for _, c := range moneyCols {
		mc, _ := excelize.CoordinatesToCellName(c, row)
		if err := f.SetCellStyle(sheet, mc, mc, moneyStyle); err != nil {
			return err
		}
	}
	return nil
}

func writeExpenses(f *excelize.File, st styles, expenses []model.Expense) error {
	headers := []string{"ID", "Date", "Description", "Category", "Amount"}
	if err := writeHeader(f, SheetExpenses, st.header, headers, []float64{38, 12, 30, 20, 14}); err != nil {
		return err
	}

	row := 2
	for _, e := range expenses {
		values := []any{e.ID, e.Date, e.Description, string(e.Category), e.Amount.InexactFloat64()}
		if err := setRow(f, SheetExpenses, row, values, st.data, st.money, 5); err != nil {
			return err
		}
		row++
	}

	total := []any{"Total", "", fmt.Sprintf("%d expenses", len(expenses)), "", budget.TotalSpent(expenses).InexactFloat64()}
	return setRow(f, SheetExpenses, row, total, st.total, st.total)
}

func writeBudget(f *excelize.File, st styles, state model.AppState) error {
	headers := []string{"Category", "Planned", "Spent", "Remaining", "Used %"}
	if err := writeHeader(f, SheetBudget, st.header, headers, []float64{20, 14, 14, 14, 10}); err != nil {
		return err
	}

	row := 2
	for _, line := range budget.Reconcile(state.BudgetPlan, state.Expenses) {
		values := []any{
			string(line.Category),
			line.Planned.InexactFloat64(),
			line.Spent.InexactFloat64(),
			line.Diff.InexactFloat64(),
			line.UsedPct,
		}
		diffStyle := st.money
		if line.Overspent {
			diffStyle = st.warning
		}
		if err := setRow(f, SheetBudget, row, values, st.data, st.money, 2, 3); err != nil {
			return err
		}
		cell, _ := excelize.CoordinatesToCellName(4, row)
		if err := f.SetCellStyle(SheetBudget, cell, cell, diffStyle); err != nil {
			return err
		}
		row++
	}

	snap := budget.Summarize(state)
	total := []any{"Total", snap.TotalBudget.InexactFloat64(), snap.TotalSpent.InexactFloat64(), snap.Remaining.InexactFloat64(), ""}
	return setRow(f, SheetBudget, row, total, st.total, st.total)
}

func writeSavings(f *excelize.File, st styles, goals []model.SavingsGoal) error {
	headers := []string{"Goal", "Current", "Target", "Progress %"}
	if err := writeHeader(f, SheetSavings, st.header, headers, []float64{24, 14, 14, 12}); err != nil {
		return err
	}

	row := 2
	for _, g := range goals {
		values := []any{g.Name, g.Current.InexactFloat64(), g.Target.InexactFloat64(), budget.GoalProgress(g)}
		if err := setRow(f, SheetSavings, row, values, st.data, st.money, 2, 3); err != nil {
			return err
		}
		row++
	}
	return nil
}
