package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/theirongolddev/scholarhub/internal/store"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX_Sheets(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, store.DefaultState()); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer func() { _ = f.Close() }()

	if diff := cmp.Diff([]string{SheetExpenses, SheetBudget, SheetSavings}, f.GetSheetList()); diff != "" {
		t.Fatalf("sheet list mismatch (-want +got):\n%s", diff)
	}

	raw := excelize.Options{RawCellValue: true}
	checks := []struct {
		sheet, cell, want string
	}{
		{SheetExpenses, "A1", "ID"},
		{SheetExpenses, "A2", "1"},
		{SheetExpenses, "C2", "Lunch at cafeteria"},
		{SheetExpenses, "E2", "250"},
		{SheetExpenses, "A7", "Total"},
		{SheetExpenses, "E7", "3200"},
		{SheetBudget, "A2", "Food & Dining"},
		{SheetBudget, "C2", "1050"},
		{SheetBudget, "D2", "6950"},
		{SheetBudget, "A10", "Total"},
		{SheetBudget, "D10", "26800"},
		{SheetSavings, "A2", "Laptop Fund"},
		{SheetSavings, "D2", "30"},
	}
	for _, c := range checks {
		got, err := f.GetCellValue(c.sheet, c.cell, raw)
		if err != nil {
			t.Fatalf("GetCellValue(%s!%s): %v", c.sheet, c.cell, err)
		}
		if got != c.want {
			t.Errorf("%s!%s = %q, want %q", c.sheet, c.cell, got, c.want)
		}
	}
}

func TestWriteJSON_MatchesSlotPayload(t *testing.T) {
	state := store.DefaultState()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, state); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "{\n  \"budgetPlan\": {") {
		t.Fatalf("unexpected prefix:\n%s", out)
	}

	back, err := store.Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(back.Expenses) != len(state.Expenses) || len(back.SavingsGoals) != len(state.SavingsGoals) {
		t.Fatalf("decoded %d expenses, %d goals", len(back.Expenses), len(back.SavingsGoals))
	}
	if !back.BudgetPlan.TotalBudget.Equal(state.BudgetPlan.TotalBudget) {
		t.Errorf("total = %s", back.BudgetPlan.TotalBudget)
	}
}
