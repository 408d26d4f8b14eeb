package ledger

import (
	"io"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/theirongolddev/scholarhub/internal/model"

	"github.com/google/uuid"
)

// IDGenerator assigns identifiers to new expenses.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random version 4 UUIDs. With a non-nil Rand the ids are
// drawn from that reader, which makes them reproducible in tests.
type UUIDGenerator struct {
	Rand  io.Reader
	Clock func() time.Time
}

// NewID implements IDGenerator.
func (g UUIDGenerator) NewID() string {
	if g.Rand == nil {
		return uuid.NewString()
	}
	id, err := uuid.NewRandomFromReader(g.Rand)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Now returns the generator's clock, used to default an expense date.
func (g UUIDGenerator) Now() time.Time {
	if g.Clock != nil {
		return g.Clock()
	}
	return time.Now()
}

// Sequence is a monotonic counter. Ids are the decimal string of the next value.
type Sequence struct {
	last  atomic.Uint64
	Clock func() time.Time
}

// NewSequence starts a counter whose first id is start+1.
func NewSequence(start uint64) *Sequence {
	s := &Sequence{}
	s.last.Store(start)
	return s
}

// NewSequenceAfter starts a counter past the largest numeric id in log, so new
// ids never collide with existing ones.
func NewSequenceAfter(log []model.Expense) *Sequence {
	var highest uint64
	for _, e := range log {
		if n, err := strconv.ParseUint(e.ID, 10, 64); err == nil && n > highest {
			highest = n
		}
	}
	return NewSequence(highest)
}

// NewID implements IDGenerator.
func (s *Sequence) NewID() string {
	return strconv.FormatUint(s.last.Add(1), 10)
}

// Now returns the sequence's clock, used to default an expense date.
func (s *Sequence) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
