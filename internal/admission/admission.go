// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package admission decides whether the current session may enter a route.

Every navigation passes through exactly one gate, evaluated against the
hydrated session at that moment. The outcome is always one of three things:
let the request in, send the visitor to the login view, or send them to their
role's home view. Gates never return errors; a navigation can be redirected
but it cannot fail.

Gate Taxonomy:

  - NoAuth: entry views (login, register, forgot-password). An already
    authenticated visitor has no business here and is bounced home.
  - PublicStorefront: browsing views open to anonymous visitors and
    ordinary shoppers, but off-limits to administrative roles, whose
    home is the back office.
  - Authenticated: views that need any signed-in identity.
  - Roles: views restricted to an explicit set of roles.
*/
package admission

import (
	"github.com/taibuivan/voltcart/internal/platform/constants"
	"github.com/taibuivan/voltcart/internal/session"
)

// # Outcomes

// Decision is the verdict of a gate evaluation.
type Decision int

const (
	// Allow admits the request into the route.
	Allow Decision = iota

	// RedirectLogin sends the visitor to the login view.
	RedirectLogin

	// RedirectRoleHome sends the visitor to their role's home view.
	RedirectRoleHome
)

// Outcome couples a [Decision] with its redirect target, when any.
type Outcome struct {
	Decision Decision
	Target   string
}

func allow() Outcome {
	return Outcome{Decision: Allow}
}

func toLogin() Outcome {
	return Outcome{Decision: RedirectLogin, Target: constants.LoginRoute}
}

func toRoleHome(role session.Role) Outcome {
	return Outcome{Decision: RedirectRoleHome, Target: role.HomeRoute()}
}

// # Gates

// NoAuth admits only anonymous visitors.
//
// An authenticated visitor is redirected to their role home, never to login:
// the entry views exist to create a session, and one already exists.
func NoAuth(current *session.Session) Outcome {
	if current.IsAuthenticated() {
		return toRoleHome(current.Role)
	}
	return allow()
}

// PublicStorefront admits anonymous visitors and ordinary shoppers.
//
// Administrative roles are redirected to the back office. The storefront
// browsing surface is deliberately closed to them; they manage the catalog,
// they do not shop it.
func PublicStorefront(current *session.Session) Outcome {
	if current.IsAuthenticated() && current.Role.Administrative() {
		return toRoleHome(current.Role)
	}
	return allow()
}

// Authenticated admits any signed-in identity regardless of role.
func Authenticated(current *session.Session) Outcome {
	if !current.IsAuthenticated() {
		return toLogin()
	}
	return allow()
}

// Roles admits only the listed roles.
//
// Anonymous visitors go to login. Authenticated visitors whose role is not
// listed go to their own role home: they are signed in, just in the wrong
// part of the application.
func Roles(current *session.Session, allowed ...session.Role) Outcome {
	if !current.IsAuthenticated() {
		return toLogin()
	}

	for _, role := range allowed {
		if current.Role == role {
			return allow()
		}
	}

	return toRoleHome(current.Role)
}
