// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"time"
)

// # Session Persistence

// Store defines the durable persistence contract for browser sessions.
//
// Sessions are keyed by an opaque ID carried in a cookie. The stored record
// holds the credential and identity fields independently so a page reload can
// reconstruct a best-effort session before any backend round trip completes.
type Store interface {

	/*
		Save persists the session under the given ID for the given lifetime.

		Parameters:
		  - context: context.Context
		  - id: string
		  - session: *Session
		  - ttl: time.Duration

		Returns:
		  - error: Persistence failures
	*/
	Save(context context.Context, id string, session *Session, ttl time.Duration) error

	/*
		Find returns the session stored under the given ID.

		Description: Returns apperr.NotFound when the ID is unknown or expired.
		The credential is NOT validated against the backend — hydration is
		optimistic, and a stale token is only discovered when the first
		authenticated call fails.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Session: Hydrated session
		  - error: apperr.NotFound or storage failures
	*/
	Find(context context.Context, id string) (*Session, error)

	/*
		Delete removes the session record unconditionally.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Storage failures (an absent record is not an error)
	*/
	Delete(context context.Context, id string) error
}
