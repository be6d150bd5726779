// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/voltcart/internal/platform/constants"
	"github.com/taibuivan/voltcart/internal/platform/ctxutil"
	"github.com/taibuivan/voltcart/internal/session"
)

type fakeHydrator struct {
	session *session.Session
	err     error
	calls   int
}

func (f *fakeHydrator) Hydrate(_ context.Context, _ string) (*session.Session, error) {
	f.calls++
	return f.session, f.err
}

func runLoadSession(t *testing.T, hydrator *fakeHydrator, cookie *http.Cookie) (current *session.Session, sessionID string) {
	t.Helper()

	var handler http.Handler = http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		current = session.FromContext(request.Context())
		sessionID = ctxutil.GetSessionID(request.Context())
	})
	handler = LoadSession(hydrator)(handler)

	request := httptest.NewRequest(http.MethodGet, "/cart", nil)
	if cookie != nil {
		request.AddCookie(cookie)
	}
	handler.ServeHTTP(httptest.NewRecorder(), request)
	return current, sessionID
}

func TestLoadSessionNoCookieIsAnonymous(t *testing.T) {
	hydrator := &fakeHydrator{}

	current, sessionID := runLoadSession(t, hydrator, nil)

	assert.Nil(t, current)
	assert.Empty(t, sessionID)
	assert.Zero(t, hydrator.calls, "no cookie means no store lookup")
}

func TestLoadSessionHydratesFromCookie(t *testing.T) {
	hydrator := &fakeHydrator{session: &session.Session{
		Token: "jwt-token",
		Role:  session.RoleUser,
		Email: "linh@example.com",
	}}

	current, sessionID := runLoadSession(t, hydrator, &http.Cookie{
		Name:  constants.SessionCookieName,
		Value: "sess-123",
	})

	require.NotNil(t, current)
	assert.True(t, current.IsAuthenticated())
	assert.Equal(t, "linh@example.com", current.Email)
	assert.Equal(t, "sess-123", sessionID)
}

func TestLoadSessionStaleCookieProceedsAnonymously(t *testing.T) {
	hydrator := &fakeHydrator{err: errors.New("record gone")}

	current, sessionID := runLoadSession(t, hydrator, &http.Cookie{
		Name:  constants.SessionCookieName,
		Value: "sess-expired",
	})

	assert.Nil(t, current, "a dead cookie must not produce an identity")
	assert.Equal(t, "sess-expired", sessionID, "the session id stays visible for logging")
}
