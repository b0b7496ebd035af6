package cart

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore implements Store with an in-process map. Records are copied on
// the way in and out so callers cannot mutate stored state.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

// Load returns a copy of the record under key.
func (m *MemoryStore) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	m.mu.RLock()
	data, ok := m.records[key]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(data), nil
}

// Save stores a copy of data under key.
func (m *MemoryStore) Save(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	m.records[key] = slices.Clone(data)
	m.mu.Unlock()
	return nil
}

// Delete removes the record under key.
func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	delete(m.records, key)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored records.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Healthcheck always succeeds; it exists so the memory store can be plugged
// into readiness probes like the networked stores.
func (m *MemoryStore) Healthcheck(ctx context.Context) error {
	return nil
}
