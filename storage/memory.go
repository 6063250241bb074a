package storage

import "sync"

// Memory is an in-process [Storage] backend. It does not survive restarts
// and is the default when the builder receives no explicit backend.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory describes the newmemory operation and its observable behavior.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get describes the get operation and its observable behavior.
func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok
}

// Set describes the set operation and its observable behavior.
func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Remove describes the remove operation and its observable behavior.
func (m *Memory) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

// Len reports the number of stored keys.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}
