// Package session owns the in-memory application state and routes every
// mutation through the state store.
package session

import (
	"fmt"

	"github.com/theirongolddev/scholarhub/internal/auth"
	"github.com/theirongolddev/scholarhub/internal/budget"
	"github.com/theirongolddev/scholarhub/internal/ledger"
	"github.com/theirongolddev/scholarhub/internal/model"

	"go.uber.org/zap"
)

// Persister loads and saves the whole application state.
type Persister interface {
	Load() model.AppState
	Save(model.AppState) error
	Reset() (model.AppState, error)
}

// Session is the single source of truth for one running program.
type Session struct {
	state model.AppState
	store Persister
	ids   ledger.IDGenerator
	user  auth.Identity
	log   *zap.Logger

	sequential bool
}

// Option configures a Session.
type Option func(*Session)

// WithIDs overrides the expense id generator (UUIDs by default).
func WithIDs(ids ledger.IDGenerator) Option {
	return func(s *Session) { s.ids = ids }
}

// WithSequentialIDs numbers new expenses 1, 2, 3... continuing after the
// highest numeric id already in the loaded log.
func WithSequentialIDs() Option {
	return func(s *Session) { s.sequential = true }
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = l }
}

// Open loads the stored state (or the defaults) into a new session.
func Open(p Persister, opts ...Option) *Session {
	s := &Session{
		store: p,
		ids:   ledger.UUIDGenerator{},
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = p.Load()
	if s.sequential {
		s.ids = ledger.NewSequenceAfter(s.state.Expenses)
	}
	return s
}

// State returns the current state. Callers must treat it as read-only.
func (s *Session) State() model.AppState {
	return s.state
}

// Snapshot computes the dashboard figures for the current state.
func (s *Session) Snapshot() budget.Snapshot {
	return budget.Summarize(s.state)
}

// Lines computes the budget summary rows for the current state.
func (s *Session) Lines() []budget.CategoryLine {
	return budget.Reconcile(s.state.BudgetPlan, s.state.Expenses)
}

// AddExpense validates and logs an expense, then saves. A validation failure
// leaves the state untouched and returns a *ledger.ValidationError.
func (s *Session) AddExpense(c ledger.Candidate) (model.Expense, error) {
	expenses, exp, err := ledger.Append(s.state.Expenses, c, s.ids)
	if err != nil {
		return model.Expense{}, err
	}

	next := s.state
	next.Expenses = expenses
	if err := s.commit(next); err != nil {
		return model.Expense{}, err
	}
	s.log.Info("expense added",
		zap.String("id", exp.ID),
		zap.String("category", string(exp.Category)),
		zap.String("amount", exp.Amount.String()),
	)
	return exp, nil
}

// EditPlan starts a draft of the current plan.
func (s *Session) EditPlan() budget.Draft {
	return budget.ProposeEdit(s.state.BudgetPlan)
}

// CommitPlan replaces the plan with the draft and saves. An over-allocated
// draft returns a *budget.OverAllocatedError and changes nothing.
func (s *Session) CommitPlan(d budget.Draft) (model.BudgetPlan, error) {
	plan, err := budget.Commit(d)
	if err != nil {
		return model.BudgetPlan{}, err
	}

	next := s.state
	next.BudgetPlan = plan
	if err := s.commit(next); err != nil {
		return model.BudgetPlan{}, err
	}
	s.log.Info("budget plan updated", zap.String("total", plan.TotalBudget.String()))
	return plan, nil
}

// Reset restores and saves the default state.
func (s *Session) Reset() error {
	state, err := s.store.Reset()
	if err != nil {
		return fmt.Errorf("resetting state: %w", err)
	}
	s.state = state
	return nil
}

// SignIn records the signed-in identity.
func (s *Session) SignIn(id auth.Identity) {
	s.user = id
}

// User returns the signed-in identity; zero when nobody signed in.
func (s *Session) User() auth.Identity {
	return s.user
}

// commit saves next and only then makes it current, so a failed write leaves
// memory and disk in agreement.
func (s *Session) commit(next model.AppState) error {
	if err := s.store.Save(next); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	s.state = next
	return nil
}
