package store

import (
	"sync"

	"github.com/atomicstack/lcdmenu/internal/engine"
	"github.com/atomicstack/lcdmenu/internal/menu"
)

// Memory keeps values for the lifetime of the process.
type Memory struct {
	mu      sync.Mutex
	records map[string]Record
	writes  int
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]Record)}
}

func (m *Memory) Persist(w engine.Write) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[w.Key] = recordOf(w)
	m.writes++
}

func (m *Memory) Restore(tree *menu.Tree) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return restoreInto(tree, func(key string) (Record, bool) {
		r, ok := m.records[key]
		return r, ok
	}), nil
}

// Get returns the record stored under key.
func (m *Memory) Get(key string) (Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[key]
	return r, ok
}

// Writes counts Persist calls.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *Memory) Close() error { return nil }
