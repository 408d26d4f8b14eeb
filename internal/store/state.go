package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/theirongolddev/scholarhub/internal/model"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// StateKey names the durable slot holding the serialized AppState.
const StateKey = "scholarHubState"

// ErrDeserialization is matched by errors.Is for any DeserializationError.
var ErrDeserialization = errors.New("stored state unusable")

// DeserializationError describes why the durable slot could not be used.
// Load recovers from it by falling back to DefaultState.
type DeserializationError struct {
	Key string
	Err error // nil when the slot is simply empty
}

func (e *DeserializationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("no stored state under %q", e.Key)
	}
	return fmt.Sprintf("decoding state %q: %v", e.Key, e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrDeserialization) match.
func (e *DeserializationError) Is(target error) bool {
	return target == ErrDeserialization
}

// StateStore reads and writes the whole AppState to one slot.
type StateStore struct {
	slot Slot
	key  string
	log  *zap.Logger
}

// NewStateStore binds a state store to slot. A nil logger disables logging.
func NewStateStore(slot Slot, logger *zap.Logger) *StateStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StateStore{slot: slot, key: StateKey, log: logger}
}

// Load returns the stored state, or DefaultState when the slot is empty,
// unreadable or corrupt. It never fails.
func (s *StateStore) Load() model.AppState {
	state, err := s.read()
	if err != nil {
		var de *DeserializationError
		if errors.As(err, &de) && de.Err == nil {
			s.log.Debug("no stored state, using defaults", zap.String("key", s.key))
		} else {
			s.log.Warn("stored state unusable, using defaults", zap.String("key", s.key), zap.Error(err))
		}
		return DefaultState()
	}
	return state
}

// Save serializes state and overwrites the slot.
func (s *StateStore) Save(state model.AppState) error {
	data, err := Encode(state)
	if err != nil {
		return err
	}
	if err := s.slot.Put(s.key, data); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	s.log.Debug("state saved",
		zap.String("key", s.key),
		zap.Int("bytes", len(data)),
		zap.Int("expenses", len(state.Expenses)),
	)
	return nil
}

// Reset overwrites the slot with DefaultState and returns it.
func (s *StateStore) Reset() (model.AppState, error) {
	state := DefaultState()
	if err := s.Save(state); err != nil {
		return model.AppState{}, err
	}
	return state, nil
}

func (s *StateStore) read() (model.AppState, error) {
	data, ok, err := s.slot.Get(s.key)
	if err != nil {
		return model.AppState{}, &DeserializationError{Key: s.key, Err: err}
	}
	if !ok {
		return model.AppState{}, &DeserializationError{Key: s.key}
	}
	state, err := Decode(data)
	if err != nil {
		return model.AppState{}, &DeserializationError{Key: s.key, Err: err}
	}
	return state, nil
}

// Encode serializes a state in the durable slot format.
func Encode(state model.AppState) ([]byte, error) {
	data, err := json.Marshal(normalize(state))
	if err != nil {
		return nil, fmt.Errorf("encoding state: %w", err)
	}
	return data, nil
}

// Decode parses the durable slot format.
func Decode(data []byte) (model.AppState, error) {
	var state model.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return model.AppState{}, err
	}
	if err := checkAmounts(state); err != nil {
		return model.AppState{}, err
	}
	return normalize(state), nil
}

// checkAmounts rejects a decoded state holding any amount outside the range
// model.ParseAmount accepts.
func checkAmounts(state model.AppState) error {
	if !model.AmountInRange(state.BudgetPlan.TotalBudget) {
		return fmt.Errorf("totalBudget: %w", model.ErrAmountRange)
	}
	for c, v := range state.BudgetPlan.Categories {
		if !model.AmountInRange(v) {
			return fmt.Errorf("category %q: %w", c, model.ErrAmountRange)
		}
	}
	for _, e := range state.Expenses {
		if !model.AmountInRange(e.Amount) {
			return fmt.Errorf("expense %s: %w", e.ID, model.ErrAmountRange)
		}
	}
	for _, g := range state.SavingsGoals {
		if !model.AmountInRange(g.Target) || !model.AmountInRange(g.Current) {
			return fmt.Errorf("goal %s: %w", g.ID, model.ErrAmountRange)
		}
	}
	return nil
}

// normalize replaces nil collections with empty ones so a decoded state
// compares equal to the one that was saved.
func normalize(state model.AppState) model.AppState {
	if state.BudgetPlan.Categories == nil {
		state.BudgetPlan.Categories = make(map[model.Category]decimal.Decimal)
	}
	if state.Expenses == nil {
		state.Expenses = []model.Expense{}
	}
	if state.SavingsGoals == nil {
		state.SavingsGoals = []model.SavingsGoal{}
	}
	return state
}
