package session

import (
	"errors"
	"testing"

	"github.com/theirongolddev/scholarhub/internal/auth"
	"github.com/theirongolddev/scholarhub/internal/budget"
	"github.com/theirongolddev/scholarhub/internal/ledger"
	"github.com/theirongolddev/scholarhub/internal/model"
	"github.com/theirongolddev/scholarhub/internal/store"

	"github.com/shopspring/decimal"
)

type failingSlot struct{ *store.MemorySlot }

func (failingSlot) Put(string, []byte) error { return errors.New("disk full") }

func newTestSession(t *testing.T) (*Session, *store.StateStore, *store.MemorySlot) {
	t.Helper()
	slot := store.NewMemorySlot()
	st := store.NewStateStore(slot, nil)
	return Open(st, WithIDs(ledger.NewSequence(100))), st, slot
}

func TestAddExpense_PersistsNewestFirst(t *testing.T) {
	s, st, _ := newTestSession(t)

	exp, err := s.AddExpense(ledger.Candidate{
		Date: "2024-12-16", Description: "Groceries", Category: "Food & Dining", Amount: "450",
	})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if exp.ID != "101" {
		t.Errorf("ID = %q, want 101", exp.ID)
	}

	reloaded := st.Load()
	if len(reloaded.Expenses) != 6 || reloaded.Expenses[0].ID != "101" {
		t.Fatalf("persisted expenses = %+v", reloaded.Expenses)
	}
	if got := s.Snapshot().Remaining; !got.Equal(decimal.NewFromInt(26350)) {
		t.Fatalf("Remaining = %s, want 26350", got)
	}
}

func TestAddExpense_ValidationLeavesStateUnchanged(t *testing.T) {
	s, _, slot := newTestSession(t)

	_, err := s.AddExpense(ledger.Candidate{Description: "Tea", Category: "Other", Amount: ""})
	if !errors.Is(err, ledger.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if len(s.State().Expenses) != 5 {
		t.Fatalf("len(Expenses) = %d, want 5", len(s.State().Expenses))
	}
	if _, ok, _ := slot.Get(store.StateKey); ok {
		t.Fatal("validation failure wrote the slot")
	}
}

func TestCommitPlan(t *testing.T) {
	s, st, _ := newTestSession(t)

	d := s.EditPlan()
	d = budget.SetCategoryAllocation(d, model.CategoryFood, "9000")
	if _, err := s.CommitPlan(d); !errors.Is(err, budget.ErrOverAllocated) {
		t.Fatalf("CommitPlan over-allocated err = %v", err)
	}
	if got := s.State().BudgetPlan.Allocation(model.CategoryFood); !got.Equal(decimal.NewFromInt(8000)) {
		t.Fatalf("plan changed after failed commit: %s", got)
	}

	d = budget.SetTotalBudget(d, "31000")
	if _, err := s.CommitPlan(d); err != nil {
		t.Fatalf("CommitPlan: %v", err)
	}
	if got := st.Load().BudgetPlan.TotalBudget; !got.Equal(decimal.NewFromInt(31000)) {
		t.Fatalf("persisted total = %s, want 31000", got)
	}
}

func TestSaveFailureKeepsPreviousState(t *testing.T) {
	st := store.NewStateStore(failingSlot{store.NewMemorySlot()}, nil)
	s := Open(st)

	_, err := s.AddExpense(ledger.Candidate{Description: "Tea", Category: "Other", Amount: "5"})
	if err == nil {
		t.Fatal("AddExpense succeeded despite failing slot")
	}
	if len(s.State().Expenses) != 5 {
		t.Fatalf("in-memory state advanced past failed save: %d expenses", len(s.State().Expenses))
	}
}

func TestReset(t *testing.T) {
	s, _, _ := newTestSession(t)
	if _, err := s.AddExpense(ledger.Candidate{Description: "Tea", Category: "Other", Amount: "5"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(s.State().Expenses) != 5 {
		t.Fatalf("len(Expenses) after reset = %d, want 5", len(s.State().Expenses))
	}
}

func TestSignIn(t *testing.T) {
	s, _, _ := newTestSession(t)
	if s.User().SignedIn() {
		t.Fatal("new session already signed in")
	}
	id, err := auth.Login("ana@uni.edu", "pw")
	if err != nil {
		t.Fatal(err)
	}
	s.SignIn(id)
	if s.User().Email != "ana@uni.edu" {
		t.Fatalf("User = %+v", s.User())
	}
}

func TestWithSequentialIDs_ResumesAfterStoredLog(t *testing.T) {
	st := store.NewStateStore(store.NewMemorySlot(), nil)
	state := store.DefaultState()
	state.Expenses = append([]model.Expense{{ID: "41", Date: "2024-12-20", Description: "Snacks", Category: model.CategoryFood, Amount: decimal.NewFromInt(80)}}, state.Expenses...)
	if err := st.Save(state); err != nil {
		t.Fatal(err)
	}

	s := Open(st, WithSequentialIDs())
	exp, err := s.AddExpense(ledger.Candidate{Description: "Tea", Category: "Other", Amount: "20"})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if exp.ID != "42" {
		t.Fatalf("ID = %q, want 42", exp.ID)
	}
}
