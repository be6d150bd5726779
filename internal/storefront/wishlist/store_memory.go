// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wishlist

import (
	"context"
	"sync"

	"github.com/taibuivan/voltcart/internal/platform/apperr"
)

// MemoryStore implements [CacheStore] in process memory.
// Used for local development and tests; entries live until reset.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Wishlist
}

// NewMemoryStore creates an empty in-memory wishlist cache.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Wishlist)}
}

func (store *MemoryStore) Get(_ context.Context, sessionID string) (*Wishlist, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	cached, ok := store.entries[sessionID]
	if !ok {
		return nil, apperr.NotFound("Wishlist")
	}

	copied := cached
	return &copied, nil
}

func (store *MemoryStore) Put(_ context.Context, sessionID string, list *Wishlist) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.entries[sessionID] = *list
	return nil
}

func (store *MemoryStore) Reset(_ context.Context, sessionID string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.entries, sessionID)
	return nil
}
