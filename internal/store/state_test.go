package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/scholarhub/internal/model"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestLoad_EmptySlotReturnsDefaults(t *testing.T) {
	s := NewStateStore(NewMemorySlot(), nil)

	got := s.Load()
	if diff := cmp.Diff(DefaultState(), got, decimalEqual); diff != "" {
		t.Fatalf("Load() on empty slot mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_CorruptSlotReturnsDefaults(t *testing.T) {
	slot := NewMemorySlot()
	if err := slot.Put(StateKey, []byte(`{"budgetPlan": {"totalBudget": "lots"`)); err != nil {
		t.Fatal(err)
	}
	s := NewStateStore(slot, nil)

	got := s.Load()
	if !got.BudgetPlan.TotalBudget.Equal(decimal.NewFromInt(30000)) {
		t.Fatalf("TotalBudget = %s, want 30000 from defaults", got.BudgetPlan.TotalBudget)
	}
	if len(got.Expenses) != 5 {
		t.Fatalf("len(Expenses) = %d, want 5 seeded", len(got.Expenses))
	}
}

func TestLoad_OutOfRangeAmountReturnsDefaults(t *testing.T) {
	for _, payload := range []string{
		`{"budgetPlan":{"totalBudget":30000,"categories":{}},"expenses":[{"id":"1","date":"2025-01-01","description":"x","category":"Other","amount":1e-20000000}],"savingsGoals":[]}`,
		`{"budgetPlan":{"totalBudget":1e400,"categories":{}},"expenses":[],"savingsGoals":[]}`,
	} {
		slot := NewMemorySlot()
		if err := slot.Put(StateKey, []byte(payload)); err != nil {
			t.Fatal(err)
		}
		s := NewStateStore(slot, nil)

		if _, err := s.read(); !errors.Is(err, model.ErrAmountRange) {
			t.Fatalf("read() error = %v, want ErrAmountRange", err)
		}
		if got := s.Load(); len(got.Expenses) != 5 {
			t.Fatalf("len(Expenses) = %d, want 5 seeded", len(got.Expenses))
		}
	}
}

func TestRead_ReportsDeserializationError(t *testing.T) {
	slot := NewMemorySlot()
	_ = slot.Put(StateKey, []byte("not json"))
	s := NewStateStore(slot, nil)

	_, err := s.read()
	if !errors.Is(err, ErrDeserialization) {
		t.Fatalf("read() error = %v, want ErrDeserialization", err)
	}
	var de *DeserializationError
	if !errors.As(err, &de) || de.Err == nil {
		t.Fatalf("read() error = %#v, want wrapped decode error", err)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	state := DefaultState()
	state.BudgetPlan.TotalBudget = decimal.RequireFromString("31250.75")
	delete(state.BudgetPlan.Categories, model.CategoryOther)
	state.Expenses = append([]model.Expense{{
		ID:          "abc",
		Date:        "2025-01-02",
		Description: "Printer paper",
		Category:    model.CategoryBooks,
		Amount:      decimal.RequireFromString("12.34"),
	}}, state.Expenses...)
	state.SavingsGoals[0].Current = decimal.RequireFromString("51000.5")

	s := NewStateStore(NewMemorySlot(), nil)
	if err := s.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := s.Load()
	if diff := cmp.Diff(state, got, decimalEqual); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoad_EmptyCollectionsRoundTrip(t *testing.T) {
	state := model.AppState{
		BudgetPlan:   model.BudgetPlan{TotalBudget: decimal.Zero, Categories: map[model.Category]decimal.Decimal{}},
		Expenses:     []model.Expense{},
		SavingsGoals: []model.SavingsGoal{},
	}

	s := NewStateStore(NewMemorySlot(), nil)
	if err := s.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if diff := cmp.Diff(state, s.Load(), decimalEqual); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_AmountsAreJSONNumbers(t *testing.T) {
	data, err := Encode(model.AppState{
		BudgetPlan: model.BudgetPlan{TotalBudget: decimal.NewFromInt(100)},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"budgetPlan":{"totalBudget":100,"categories":{}},"expenses":[],"savingsGoals":[]}`
	if string(data) != want {
		t.Fatalf("Encode = %s, want %s", data, want)
	}
}

func TestDecode_AcceptsSourceShape(t *testing.T) {
	raw := `{"budgetPlan":{"totalBudget":500,"categories":{"Food & Dining":200.5}},` +
		`"expenses":[{"id":"1734567890123","date":"2024-12-18","description":"Tea","category":"Food & Dining","amount":20}],` +
		`"savingsGoals":[{"id":"1","name":"Bike","target":0,"current":0}]}`

	got, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if v := got.BudgetPlan.Allocation(model.CategoryFood); !v.Equal(decimal.RequireFromString("200.5")) {
		t.Errorf("Food allocation = %s, want 200.5", v)
	}
	if len(got.Expenses) != 1 || got.Expenses[0].ID != "1734567890123" {
		t.Errorf("Expenses = %+v, want the single stored expense", got.Expenses)
	}
}

func TestReset_WritesDefaults(t *testing.T) {
	slot := NewMemorySlot()
	s := NewStateStore(slot, nil)
	if err := s.Save(model.AppState{}); err != nil {
		t.Fatal(err)
	}

	state, err := s.Reset()
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(state.SavingsGoals) != 3 {
		t.Fatalf("len(SavingsGoals) = %d, want 3", len(state.SavingsGoals))
	}
	if _, ok, _ := slot.Get(StateKey); !ok {
		t.Fatal("Reset did not write the slot")
	}
}

func TestDB_StateRoundTrip(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "nested", "state.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	s := NewStateStore(db, nil)
	if _, ok, _ := db.Get(StateKey); ok {
		t.Fatal("fresh database unexpectedly has a stored state")
	}

	state := DefaultState()
	state.Expenses = state.Expenses[:2]
	if err := s.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if diff := cmp.Diff(state, s.Load(), decimalEqual); diff != "" {
		t.Fatalf("sqlite round trip mismatch (-want +got):\n%s", diff)
	}

	if _, ok, err := db.UpdatedAt(StateKey); err != nil || !ok {
		t.Fatalf("UpdatedAt ok=%v err=%v, want stored timestamp", ok, err)
	}
	keys, err := db.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 || keys[0] != StateKey {
		t.Fatalf("Keys() = %v, want [%s]", keys, StateKey)
	}
}

func TestDB_OverwriteAndDelete(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if err := db.Put("k", []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := db.Put("k", []byte("two")); err != nil {
		t.Fatal(err)
	}
	v, ok, err := db.Get("k")
	if err != nil || !ok || string(v) != "two" {
		t.Fatalf("Get(k) = %q, %v, %v; want \"two\", true, nil", v, ok, err)
	}

	if err := db.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := db.Get("k"); ok {
		t.Fatal("key still present after Delete")
	}
}
