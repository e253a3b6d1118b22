package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps the serialized state in process memory. Used by tests
// and ephemeral runs; nothing survives a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) (*State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.data == nil {
		return nil, ErrStateNotFound
	}

	var state State
	if err := json.Unmarshal(m.data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (m *MemoryStore) Save(ctx context.Context, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
	return nil
}
