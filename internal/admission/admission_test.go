// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package admission

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/voltcart/internal/session"
)

func anonymous() *session.Session { return nil }

func shopper() *session.Session {
	return &session.Session{Token: "t", Role: session.RoleUser}
}

func admin() *session.Session {
	return &session.Session{Token: "t", Role: session.RoleAdmin}
}

func superAdmin() *session.Session {
	return &session.Session{Token: "t", Role: session.RoleSuperAdmin}
}

func TestNoAuthGate(t *testing.T) {
	tests := []struct {
		name       string
		current    *session.Session
		want       Decision
		wantTarget string
	}{
		{name: "anonymous allowed", current: anonymous(), want: Allow},
		{name: "shopper bounced to storefront home", current: shopper(), want: RedirectRoleHome, wantTarget: "/"},
		{name: "admin bounced to dashboard", current: admin(), want: RedirectRoleHome, wantTarget: "/admin/dashboard"},
		{name: "super admin bounced to dashboard", current: superAdmin(), want: RedirectRoleHome, wantTarget: "/admin/dashboard"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			outcome := NoAuth(testCase.current)
			assert.Equal(t, testCase.want, outcome.Decision)
			assert.Equal(t, testCase.wantTarget, outcome.Target)
		})
	}
}

func TestPublicStorefrontGate(t *testing.T) {
	tests := []struct {
		name       string
		current    *session.Session
		want       Decision
		wantTarget string
	}{
		{name: "anonymous allowed", current: anonymous(), want: Allow},
		{name: "shopper allowed", current: shopper(), want: Allow},
		{name: "admin redirected to dashboard", current: admin(), want: RedirectRoleHome, wantTarget: "/admin/dashboard"},
		{name: "super admin redirected to dashboard", current: superAdmin(), want: RedirectRoleHome, wantTarget: "/admin/dashboard"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			outcome := PublicStorefront(testCase.current)
			assert.Equal(t, testCase.want, outcome.Decision)
			assert.Equal(t, testCase.wantTarget, outcome.Target)
		})
	}
}

func TestAuthenticatedGate(t *testing.T) {
	assert.Equal(t, RedirectLogin, Authenticated(anonymous()).Decision)
	assert.Equal(t, "/login", Authenticated(anonymous()).Target)
	assert.Equal(t, Allow, Authenticated(shopper()).Decision)
	assert.Equal(t, Allow, Authenticated(admin()).Decision)
	assert.Equal(t, Allow, Authenticated(superAdmin()).Decision)

	// A session record without a token is not an identity.
	hollow := &session.Session{Role: session.RoleUser}
	assert.Equal(t, RedirectLogin, Authenticated(hollow).Decision)
}

func TestRolesGate(t *testing.T) {
	tests := []struct {
		name       string
		current    *session.Session
		allowed    []session.Role
		want       Decision
		wantTarget string
	}{
		{
			name:    "anonymous goes to login",
			current: anonymous(),
			allowed: []session.Role{session.RoleUser},
			want:    RedirectLogin, wantTarget: "/login",
		},
		{
			name:    "shopper allowed on checkout",
			current: shopper(),
			allowed: []session.Role{session.RoleUser},
			want:    Allow,
		},
		{
			name:    "admin kept out of checkout",
			current: admin(),
			allowed: []session.Role{session.RoleUser},
			want:    RedirectRoleHome, wantTarget: "/admin/dashboard",
		},
		{
			name:    "shopper kept out of back office",
			current: shopper(),
			allowed: []session.Role{session.RoleAdmin, session.RoleSuperAdmin},
			want:    RedirectRoleHome, wantTarget: "/",
		},
		{
			name:    "admin allowed in back office",
			current: admin(),
			allowed: []session.Role{session.RoleAdmin, session.RoleSuperAdmin},
			want:    Allow,
		},
		{
			name:    "admin kept out of admin management",
			current: admin(),
			allowed: []session.Role{session.RoleSuperAdmin},
			want:    RedirectRoleHome, wantTarget: "/admin/dashboard",
		},
		{
			name:    "super admin allowed in admin management",
			current: superAdmin(),
			allowed: []session.Role{session.RoleSuperAdmin},
			want:    Allow,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			outcome := Roles(testCase.current, testCase.allowed...)
			assert.Equal(t, testCase.want, outcome.Decision)
			assert.Equal(t, testCase.wantTarget, outcome.Target)
		})
	}
}

func TestGateMiddlewareRedirects(t *testing.T) {
	handler := RequireAuth()(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	// Anonymous request: no session in context.
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/cart", nil))

	require.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/login", recorder.Header().Get("Location"))
}

func TestGateMiddlewareAdmits(t *testing.T) {
	handler := RequireAuth()(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	request := httptest.NewRequest(http.MethodGet, "/cart", nil)
	request = request.WithContext(session.NewContext(request.Context(), shopper()))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
