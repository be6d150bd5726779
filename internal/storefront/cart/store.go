// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import "context"

// CacheStore persists the per-session cart view.
//
// Implementations hold derived data only: an entry can be dropped at any
// moment and the next fetch rebuilds it from the backend.
type CacheStore interface {
	// Get returns the cached cart for the session.
	//
	// Parameters:
	//   - ctx: request-scoped context.
	//   - sessionID: opaque browser session identifier.
	//
	// Returns:
	//   - *Cart: the cached view.
	//   - error: apperr.NotFound when no entry exists.
	Get(ctx context.Context, sessionID string) (*Cart, error)

	// Put replaces the cached cart for the session wholesale.
	Put(ctx context.Context, sessionID string, cart *Cart) error

	// Reset removes the session's entry entirely.
	Reset(ctx context.Context, sessionID string) error
}
