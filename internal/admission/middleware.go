// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package admission

import (
	"net/http"

	"github.com/taibuivan/voltcart/internal/platform/respond"
	"github.com/taibuivan/voltcart/internal/session"
)

// # Router Integration

// gate wraps a pure gate function into chi-compatible middleware.
func gate(evaluate func(*session.Session) Outcome) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			outcome := evaluate(session.FromContext(request.Context()))
			if outcome.Decision != Allow {
				respond.Redirect(writer, request, outcome.Target)
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}

// RequireNoAuth guards the entry views (login, register, forgot-password).
func RequireNoAuth() func(http.Handler) http.Handler {
	return gate(NoAuth)
}

// RequireStorefront guards the public browsing views.
func RequireStorefront() func(http.Handler) http.Handler {
	return gate(PublicStorefront)
}

// RequireAuth guards views that need any signed-in identity.
func RequireAuth() func(http.Handler) http.Handler {
	return gate(Authenticated)
}

// RequireRoles guards views restricted to an explicit role set.
func RequireRoles(allowed ...session.Role) func(http.Handler) http.Handler {
	return gate(func(current *session.Session) Outcome {
		return Roles(current, allowed...)
	})
}
