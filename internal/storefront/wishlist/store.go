// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wishlist

import "context"

// CacheStore persists the per-session wishlist view.
//
// Entries are derived data: dropping one at any moment only costs a refetch.
type CacheStore interface {
	// Get returns the cached wishlist for the session.
	//
	// Parameters:
	//   - ctx: request-scoped context.
	//   - sessionID: opaque browser session identifier.
	//
	// Returns:
	//   - *Wishlist: the cached view.
	//   - error: apperr.NotFound when no entry exists.
	Get(ctx context.Context, sessionID string) (*Wishlist, error)

	// Put replaces the cached wishlist for the session wholesale.
	Put(ctx context.Context, sessionID string, list *Wishlist) error

	// Reset removes the session's entry entirely.
	Reset(ctx context.Context, sessionID string) error
}
