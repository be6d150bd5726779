// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/voltcart/internal/platform/apperr"
	"github.com/taibuivan/voltcart/internal/platform/constants"
)

// Hash field names for the persisted session record.
//
// Token, role, email and display name are stored as independent fields —
// mirroring how the storefront persists them — so partial inspection and
// debugging stay cheap. The user ID is NOT stored: it is derived from the
// token claims on every hydration.
const (
	fieldToken       = "token"
	fieldRole        = "role"
	fieldEmail       = "email"
	fieldDisplayName = "display_name"
)

// RedisStore implements [Store] using Redis hashes with TTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

/*
Save persists the session as a hash and refreshes its TTL.

Parameters:
  - context: context.Context
  - id: string
  - session: *Session
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (store *RedisStore) Save(context context.Context, id string, session *Session, ttl time.Duration) error {
	key := constants.RedisPrefixSession + id

	fields := map[string]any{
		fieldToken:       session.Token,
		fieldRole:        string(session.Role),
		fieldEmail:       session.Email,
		fieldDisplayName: session.DisplayName,
	}

	if err := store.client.HSet(context, key, fields).Err(); err != nil {
		return fmt.Errorf("redis_session_save_failed: %w", err)
	}

	if err := store.client.Expire(context, key, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_expire_failed: %w", err)
	}

	return nil
}

/*
Find reconstructs a session from its persisted fields.

Description: Returns apperr.NotFound when the ID is unknown or expired.
The user ID is recomputed from the token claims rather than trusted from
storage.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Session: Hydrated session
  - error: apperr.NotFound or connectivity errors
*/
func (store *RedisStore) Find(context context.Context, id string) (*Session, error) {
	key := constants.RedisPrefixSession + id

	fields, err := store.client.HGetAll(context, key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis_session_find_failed: %w", err)
	}

	// HGetAll returns an empty map (not redis.Nil) for a missing key.
	if len(fields) == 0 || fields[fieldToken] == "" {
		return nil, apperr.NotFound("Session")
	}

	return &Session{
		Token:       fields[fieldToken],
		Role:        Role(fields[fieldRole]),
		Email:       fields[fieldEmail],
		DisplayName: fields[fieldDisplayName],
		UserID:      UserIDFromToken(fields[fieldToken]),
	}, nil
}

/*
Delete removes the session record.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Deletion failures
*/
func (store *RedisStore) Delete(context context.Context, id string) error {
	key := constants.RedisPrefixSession + id

	if err := store.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}

	return nil
}
