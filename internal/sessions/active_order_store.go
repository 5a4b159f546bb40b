package sessions

import (
	"sync"

	"mealtrack/internal/core/domain/model/kernel"
)

// ActiveOrderStore keeps the identifier of the single order the tracking
// screen is currently following. The live tracking simulation only produces
// location pings for this order.
//
// The store is process-local session state, not persistence: it starts empty
// and resets on restart. Safe for concurrent use.
type ActiveOrderStore struct {
	mu     sync.RWMutex
	active *kernel.UUID
}

// NewActiveOrderStore creates an empty store.
func NewActiveOrderStore() *ActiveOrderStore {
	return &ActiveOrderStore{}
}

// Set marks the given order as the one being tracked, replacing any previous
// selection.
func (s *ActiveOrderStore) Set(orderID kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = &orderID
}

// Clear removes the current selection.
func (s *ActiveOrderStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
}

// Get returns the tracked order id. The second return is false when no order
// is being tracked.
func (s *ActiveOrderStore) Get() (kernel.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return kernel.UUID{}, false
	}
	return *s.active, true
}
