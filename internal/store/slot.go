package store

// Slot is a named durable location holding one serialized value.
type Slot interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

// MemorySlot keeps values in memory. Used when no database is available and in
// tests.
type MemorySlot struct {
	values map[string][]byte
}

// NewMemorySlot returns an empty in-memory slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string][]byte)}
}

// Get implements Slot.
func (m *MemorySlot) Get(key string) ([]byte, bool, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Put implements Slot.
func (m *MemorySlot) Put(key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}
