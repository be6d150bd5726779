// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package session implements the browser session layer of the gateway.

It defines the core domain entities (Session, Role) and the logic for
authentication, hydration, and session lifecycle against the commerce backend.

# Architecture

This layer is the single source of truth for "who is the current user and are
they logged in". Every other component either reads the session (admission
gates, caches) or triggers its invalidation (the upstream client on a 401) —
nobody else mutates it.
*/
package session

import (
	"context"

	"github.com/taibuivan/voltcart/internal/platform/apperr"
)

// # Roles

// Role represents the authorization level granted by the commerce backend.
//
// The set is closed: the backend issues exactly these three values, and every
// switch over Role in the gateway is exhaustive so that introducing a fourth
// role is a compile-time-visible change.
type Role string

const (
	// Ordinary shopper: catalog, cart, wishlist, checkout, order history.
	RoleUser Role = "ROLE_USER"

	// Back-office operator: product/category/order/user management.
	RoleAdmin Role = "ROLE_ADMIN"

	// Back-office operator who can additionally manage admin accounts.
	RoleSuperAdmin Role = "ROLE_SUPER_ADMIN"
)

// Valid reports whether the role is one of the three known values.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// Administrative reports whether the role belongs to the back office.
func (r Role) Administrative() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin:
		return true
	case RoleUser:
		return false
	}
	return false
}

// HomeRoute returns the landing view for the role.
//
// This mapping is deliberately centralized: every "authenticated but wrong
// page" redirect in the gateway derives its target from here and nowhere else.
func (r Role) HomeRoute() string {
	switch r {
	case RoleAdmin, RoleSuperAdmin:
		return "/admin/dashboard"
	case RoleUser:
		return "/"
	}
	return "/"
}

// # Domain Entities

// Session is the gateway's record of the currently authenticated identity.
//
// A Session is never partially updated: a new login fully replaces the prior
// identity, and logout clears it unconditionally.
type Session struct {
	// Token is the opaque bearer credential issued by the backend.
	Token string `json:"-"`
	// Role determines which views and operations are permitted.
	Role Role `json:"role"`
	// Email is the login identity, stored lowercase.
	Email string `json:"email"`
	// DisplayName is the human-readable name shown in the storefront chrome.
	DisplayName string `json:"display_name"`
	// UserID is parsed best-effort from the token claims; 0 when absent.
	UserID int64 `json:"user_id"`
}

// IsAuthenticated reports whether the session carries a credential.
//
// This is the one invariant the rest of the gateway relies on:
// authenticated if and only if the token is non-empty.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != ""
}

// # Context Plumbing

type contextKey struct{}

// NewContext returns a context carrying the hydrated session.
func NewContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

// FromContext retrieves the hydrated session, or nil for anonymous requests.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(contextKey{}).(*Session)
	return sess
}

// RequiredFromContext retrieves the hydrated session, failing with
// apperr.Unauthorized when the request is anonymous.
func RequiredFromContext(ctx context.Context) (*Session, error) {
	current := FromContext(ctx)
	if !current.IsAuthenticated() {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return current, nil
}
