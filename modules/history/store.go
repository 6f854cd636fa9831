package history

import "sync"

// Store provides calculation history storage behind an append/list/clear
// interface. Implementations must be safe for concurrent use.
type Store interface {
	// Append records a calculation.
	Append(c *Calculation) error
	// List returns all recorded calculations in insertion order.
	List() ([]*Calculation, error)
	// Clear removes all recorded calculations and returns how many there
	// were.
	Clear() (int64, error)
}

// Compile-time interface checks.
var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*Repository)(nil)
)

// MemoryStore is an in-memory history store. It is the default backend,
// holding history for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*Calculation
}

// NewMemoryStore creates a new in-memory history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append records a calculation.
func (s *MemoryStore) Append(c *Calculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, c)
	return nil
}

// List returns all recorded calculations in insertion order.
func (s *MemoryStore) List() ([]*Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Calculation, len(s.entries))
	copy(result, s.entries)
	return result, nil
}

// Clear removes all recorded calculations.
func (s *MemoryStore) Clear() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := int64(len(s.entries))
	s.entries = nil
	return n, nil
}
