// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/voltcart/internal/platform/apperr"
	"github.com/taibuivan/voltcart/internal/platform/constants"
)

// RedisStore implements [CacheStore] as one JSON value per session,
// expiring together with the session.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed wishlist cache.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (store *RedisStore) Get(context context.Context, sessionID string) (*Wishlist, error) {
	key := constants.RedisPrefixWishlistCache + sessionID

	raw, err := store.client.Get(context, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperr.NotFound("Wishlist")
	}
	if err != nil {
		return nil, fmt.Errorf("redis_wishlist_get_failed: %w", err)
	}

	var cached Wishlist
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("redis_wishlist_decode_failed: %w", err)
	}

	return &cached, nil
}

func (store *RedisStore) Put(context context.Context, sessionID string, list *Wishlist) error {
	key := constants.RedisPrefixWishlistCache + sessionID

	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("redis_wishlist_encode_failed: %w", err)
	}

	if err := store.client.Set(context, key, raw, constants.SessionTTL).Err(); err != nil {
		return fmt.Errorf("redis_wishlist_put_failed: %w", err)
	}

	return nil
}

func (store *RedisStore) Reset(context context.Context, sessionID string) error {
	key := constants.RedisPrefixWishlistCache + sessionID

	if err := store.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_wishlist_reset_failed: %w", err)
	}

	return nil
}
