package store

import (
	"context"
	"sync"
	"time"
)

// Registry resolves the store belonging to a session. Get creates and seeds
// the store on first use; repeated Get calls for the same session never
// re-apply seed data. Save persists the store for backends that keep state
// outside the process.
type Registry interface {
	Get(ctx context.Context, sessionID string) (*Store, error)
	Save(ctx context.Context, sessionID string, st *Store) error
}

// MemoryRegistry keeps session stores in a process-local map.
type MemoryRegistry struct {
	mu     sync.Mutex
	stores map[string]*Store
	now    func() time.Time
}

// NewMemoryRegistry creates an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		stores: make(map[string]*Store),
		now:    time.Now,
	}
}

// Get returns the session's store, seeding a new one on first use.
func (r *MemoryRegistry) Get(_ context.Context, sessionID string) (*Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.stores[sessionID]; ok {
		return st, nil
	}
	st := New(Seed(r.now()))
	r.stores[sessionID] = st
	return st, nil
}

// Save is a no-op: memory stores are mutated in place.
func (r *MemoryRegistry) Save(context.Context, string, *Store) error {
	return nil
}
