// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package middleware provides the HTTP middleware chain for the Voltcart gateway.
//
// # Architecture
//
// Middleware intercepts incoming HTTP requests to apply global policies
// before they reach the domain handlers. This includes cross-cutting concerns
// like Logging, Session Hydration, Rate Limiting, and CORS.
package middleware

import (
	"context"
	"net/http"

	"github.com/taibuivan/voltcart/internal/platform/constants"
	"github.com/taibuivan/voltcart/internal/platform/ctxutil"
	"github.com/taibuivan/voltcart/internal/session"
)

// SessionHydrator defines the interface needed to rehydrate sessions in middleware.
//
// # Why an interface?
//
// Defining SessionHydrator here decouples the middleware from the session
// manager implementation, allowing us to easily inject mocks during unit testing.
type SessionHydrator interface {
	Hydrate(ctx context.Context, sessionID string) (*session.Session, error)
}

// LoadSession rehydrates the browser session from the session cookie.
//
// # Flow
//  1. Check for the session cookie.
//  2. If absent, request proceeds as anonymous.
//  3. If present, look the session up via [SessionHydrator].
//  4. A missing or expired record also proceeds as anonymous: hydration is
//     optimistic, and admission decides what anonymity means per route.
//  5. Inject the [*session.Session] and session ID into the request context.
//
// # Parameters
//   - hydrator: The SessionHydrator instance.
//
// # Returns
//   - An [http.Handler] middleware.
func LoadSession(hydrator SessionHydrator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Anonymous Access ───────────────────────────────────────────
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Session Lookup ─────────────────────────────────────────────
			ctx := ctxutil.WithSessionID(request.Context(), cookie.Value)
			current, err := hydrator.Hydrate(ctx, cookie.Value)
			if err != nil {
				// Stale cookie without a backing record. Proceed anonymously;
				// the dead cookie is harmless and overwritten on next login.
				next.ServeHTTP(writer, request.WithContext(ctx))
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx = session.NewContext(ctx, current)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
