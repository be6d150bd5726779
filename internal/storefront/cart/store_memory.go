// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import (
	"context"
	"sync"

	"github.com/taibuivan/voltcart/internal/platform/apperr"
)

// MemoryStore implements [CacheStore] in process memory.
// Used for local development and tests; entries live until reset.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Cart
}

// NewMemoryStore creates an empty in-memory cart cache.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Cart)}
}

func (store *MemoryStore) Get(_ context.Context, sessionID string) (*Cart, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	cached, ok := store.entries[sessionID]
	if !ok {
		return nil, apperr.NotFound("Cart")
	}

	copied := cached
	return &copied, nil
}

func (store *MemoryStore) Put(_ context.Context, sessionID string, cart *Cart) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.entries[sessionID] = *cart
	return nil
}

func (store *MemoryStore) Reset(_ context.Context, sessionID string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.entries, sessionID)
	return nil
}
