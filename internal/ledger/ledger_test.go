package ledger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/scholarhub/internal/model"
	"github.com/theirongolddev/scholarhub/internal/store"

	"github.com/shopspring/decimal"
)

func fixedClock() time.Time {
	return time.Date(2024, 12, 15, 9, 30, 0, 0, time.UTC)
}

func TestAppend_PrependsAndPreservesOrder(t *testing.T) {
	log := store.DefaultState().Expenses
	ids := NewSequenceAfter(log)

	next, exp, err := Append(log, Candidate{
		Date:        "2024-12-15",
		Description: "Notebook",
		Category:    "Books & Supplies",
		Amount:      "120.50",
	}, ids)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	if len(next) != len(log)+1 {
		t.Fatalf("len = %d, want %d", len(next), len(log)+1)
	}
	if next[0].ID != exp.ID {
		t.Fatalf("head ID = %q, want new expense %q", next[0].ID, exp.ID)
	}
	if exp.ID != "6" {
		t.Errorf("ID = %q, want 6 (after seeded ids 1..5)", exp.ID)
	}
	if !exp.Amount.Equal(decimal.RequireFromString("120.5")) {
		t.Errorf("Amount = %s, want 120.5", exp.Amount)
	}
	for i := range log {
		if next[i+1].ID != log[i].ID {
			t.Fatalf("position %d: ID %q, want %q", i+1, next[i+1].ID, log[i].ID)
		}
	}
}

func TestAppend_DoesNotMutateInput(t *testing.T) {
	log := make([]model.Expense, 2, 8)
	log[0] = model.Expense{ID: "a"}
	log[1] = model.Expense{ID: "b"}

	_, _, err := Append(log, Candidate{Description: "x", Category: "Other", Amount: "1"}, NewSequence(0))
	if err != nil {
		t.Fatal(err)
	}
	if log[0].ID != "a" || log[1].ID != "b" || len(log) != 2 {
		t.Fatalf("input log modified: %+v", log)
	}
}

func TestAppend_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		c     Candidate
		field string
	}{
		{"empty description", Candidate{Description: "", Category: "Other", Amount: "5"}, FieldDescription},
		{"blank description", Candidate{Description: "   ", Category: "Other", Amount: "5"}, FieldDescription},
		{"missing category", Candidate{Description: "Tea", Amount: "5"}, FieldCategory},
		{"unknown category", Candidate{Description: "Tea", Category: "Snacks", Amount: "5"}, FieldCategory},
		{"missing amount", Candidate{Description: "Tea", Category: "Other"}, FieldAmount},
		{"unparseable amount", Candidate{Description: "Tea", Category: "Other", Amount: "five"}, FieldAmount},
		{"NaN amount", Candidate{Description: "Tea", Category: "Other", Amount: "NaN"}, FieldAmount},
		{"infinite amount", Candidate{Description: "Tea", Category: "Other", Amount: "Inf"}, FieldAmount},
		{"tiny exponent", Candidate{Description: "Tea", Category: "Other", Amount: "1e-20000000"}, FieldAmount},
		{"huge exponent", Candidate{Description: "Tea", Category: "Other", Amount: "1e400"}, FieldAmount},
		{"too many digits", Candidate{Description: "Tea", Category: "Other", Amount: "1234567890123456789"}, FieldAmount},
	}

	log := store.DefaultState().Expenses
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _, err := Append(log, tt.c, NewSequence(100))
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Fatalf("err = %v, want field %q", err, tt.field)
			}
			if len(next) != len(log) {
				t.Fatalf("len = %d, want unchanged %d", len(next), len(log))
			}
		})
	}
}

func TestAppend_CategoryCaseInsensitive(t *testing.T) {
	_, exp, err := Append(nil, Candidate{Description: "Bus", Category: "transportation", Amount: "30"}, NewSequence(0))
	if err != nil {
		t.Fatal(err)
	}
	if exp.Category != model.CategoryTransport {
		t.Fatalf("Category = %q, want %q", exp.Category, model.CategoryTransport)
	}
}

func TestAppend_DefaultsDateFromClock(t *testing.T) {
	seq := NewSequence(0)
	seq.Clock = fixedClock

	_, exp, err := Append(nil, Candidate{Description: "Tea", Category: "Other", Amount: "10"}, seq)
	if err != nil {
		t.Fatal(err)
	}
	if exp.Date != "2024-12-15" {
		t.Fatalf("Date = %q, want 2024-12-15", exp.Date)
	}
}

func TestUUIDGenerator_ReproducibleWithReader(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 64)
	a := UUIDGenerator{Rand: bytes.NewReader(seed), Clock: fixedClock}
	b := UUIDGenerator{Rand: bytes.NewReader(seed), Clock: fixedClock}

	c := Candidate{Description: "Tea", Category: "Other", Amount: "10"}
	_, e1, err := Append(nil, c, a)
	if err != nil {
		t.Fatal(err)
	}
	_, e2, err := Append(nil, c, b)
	if err != nil {
		t.Fatal(err)
	}
	if e1.ID != e2.ID || e1.Date != e2.Date {
		t.Fatalf("same reader and clock produced %+v and %+v", e1, e2)
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := UUIDGenerator{}
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := g.NewID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q after %d draws", id, i)
		}
		seen[id] = struct{}{}
	}
}

func TestNewSequenceAfter_SkipsNonNumericIDs(t *testing.T) {
	log := []model.Expense{{ID: "c2b4-uuid"}, {ID: "41"}, {ID: "7"}}
	if got := NewSequenceAfter(log).NewID(); got != "42" {
		t.Fatalf("NewID = %q, want 42", got)
	}
}

func TestRecent(t *testing.T) {
	log := store.DefaultState().Expenses
	if got := Recent(log, 3); len(got) != 3 || got[0].ID != "1" {
		t.Fatalf("Recent(3) = %+v", got)
	}
	if got := Recent(log, 10); len(got) != 5 {
		t.Fatalf("Recent(10) len = %d, want 5", len(got))
	}
}
