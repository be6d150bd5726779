// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/voltcart/internal/platform/apperr"
	"github.com/taibuivan/voltcart/internal/platform/constants"
)

// RedisStore implements [CacheStore] as one JSON value per session.
//
// The entry carries the session TTL so an abandoned session's cache expires
// together with the session itself.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed cart cache.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (store *RedisStore) Get(context context.Context, sessionID string) (*Cart, error) {
	key := constants.RedisPrefixCartCache + sessionID

	raw, err := store.client.Get(context, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperr.NotFound("Cart")
	}
	if err != nil {
		return nil, fmt.Errorf("redis_cart_get_failed: %w", err)
	}

	var cached Cart
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("redis_cart_decode_failed: %w", err)
	}

	return &cached, nil
}

func (store *RedisStore) Put(context context.Context, sessionID string, cart *Cart) error {
	key := constants.RedisPrefixCartCache + sessionID

	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("redis_cart_encode_failed: %w", err)
	}

	if err := store.client.Set(context, key, raw, constants.SessionTTL).Err(); err != nil {
		return fmt.Errorf("redis_cart_put_failed: %w", err)
	}

	return nil
}

func (store *RedisStore) Reset(context context.Context, sessionID string) error {
	key := constants.RedisPrefixCartCache + sessionID

	if err := store.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_cart_reset_failed: %w", err)
	}

	return nil
}
