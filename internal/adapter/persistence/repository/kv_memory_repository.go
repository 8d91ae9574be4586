package repository

import (
	"context"
	"sync"

	"piecework_tracker/internal/usecase/interfaces"
)

// KeyValueMemoryRepository keeps blobs in process memory. State is lost on
// restart; used for local runs and tests.

type KeyValueMemoryRepository struct {
	mu    sync.RWMutex
	items map[string][]byte
}

var _ interfaces.IKeyValueStore = (*KeyValueMemoryRepository)(nil)

func NewKeyValueMemoryRepository() *KeyValueMemoryRepository {
	return &KeyValueMemoryRepository{items: make(map[string][]byte)}
}

func (r *KeyValueMemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (r *KeyValueMemoryRepository) Put(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[key] = append([]byte(nil), value...)
	return nil
}
