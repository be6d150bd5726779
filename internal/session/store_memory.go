// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"sync"
	"time"

	"github.com/taibuivan/voltcart/internal/platform/apperr"
)

// MemoryStore implements [Store] with an in-process map.
//
// It backs single-instance development setups and unit tests; production
// deployments use [RedisStore] so sessions survive gateway restarts.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryRecord
}

type memoryRecord struct {
	session   Session
	expiresAt time.Time
}

// NewMemoryStore creates an empty in-process session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryRecord)}
}

// Save stores a copy of the session with its expiry deadline.
func (store *MemoryStore) Save(_ context.Context, id string, session *Session, ttl time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.sessions[id] = memoryRecord{
		session:   *session,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Find returns a copy of the stored session, or apperr.NotFound.
func (store *MemoryStore) Find(_ context.Context, id string) (*Session, error) {
	store.mu.RLock()
	record, ok := store.sessions[id]
	store.mu.RUnlock()

	if !ok || time.Now().After(record.expiresAt) {
		return nil, apperr.NotFound("Session")
	}

	session := record.session
	session.UserID = UserIDFromToken(session.Token)
	return &session, nil
}

// Delete removes the session. Deleting an absent session is not an error.
func (store *MemoryStore) Delete(_ context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.sessions, id)
	return nil
}
