// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire gateway.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Upstream Timing: Budgets for calls into the commerce backend.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: Session cookie configuration.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "voltcart-gateway"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	// Responses can only complete after the upstream call has, so this must
	// exceed the upstream budget.
	DefaultWriteTimeout = 150 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	// Sized above the upstream budget so slow backend operations (OTP email
	// dispatch) are not cut off at the gateway edge.
	GlobalRequestTimeout = 135 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Upstream Timing

const (
	// UpstreamTimeout is the per-call budget for the commerce backend.
	// Deliberately generous: OTP delivery and payment-link creation are slow
	// on the backend side and must not be classified as failures prematurely.
	UpstreamTimeout = 2 * time.Minute
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Sessions

const (
	// SessionCookieName is the cookie carrying the opaque browser session ID.
	SessionCookieName = "voltcart_session"

	// SessionTTL bounds how long a hydrated session survives without a fresh
	// login. The upstream token usually expires earlier; expiry is then
	// discovered on the first authenticated call that fails.
	SessionTTL = 7 * 24 * time.Hour
)

// # Navigation Targets

const (
	// LoginRoute is where unauthenticated navigations are sent.
	LoginRoute = "/login"

	// StorefrontHomeRoute is the home view for ordinary shoppers.
	StorefrontHomeRoute = "/"

	// AdminHomeRoute is the home view for administrative roles.
	AdminHomeRoute = "/admin/dashboard"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixSession       = "gw:session:"
	RedisPrefixCartCache     = "gw:cart:"
	RedisPrefixWishlistCache = "gw:wishlist:"
)
