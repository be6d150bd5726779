// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/voltcart/internal/platform/apperr"
)

type fakeAuthClient struct {
	post func(ctx context.Context, path string, query url.Values, body, out any) error
}

func (f *fakeAuthClient) Post(ctx context.Context, path string, query url.Values, body, out any) error {
	return f.post(ctx, path, query, body, out)
}

type recordingResetter struct {
	events *[]string
	label  string
	err    error
}

func (r *recordingResetter) Reset(context.Context, string) error {
	*r.events = append(*r.events, r.label)
	return r.err
}

// recordingStore wraps MemoryStore to capture teardown ordering.
type recordingStore struct {
	*MemoryStore
	events    *[]string
	deleteErr error
}

func (r *recordingStore) Delete(ctx context.Context, id string) error {
	*r.events = append(*r.events, "store_delete")
	if r.deleteErr != nil {
		return r.deleteErr
	}
	return r.MemoryStore.Delete(ctx, id)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestManagerLoginEstablishesSession(t *testing.T) {
	store := NewMemoryStore()
	api := &fakeAuthClient{
		post: func(_ context.Context, path string, _ url.Values, _, out any) error {
			require.Equal(t, "/auth/login", path)
			payload := out.(*loginResponse)
			payload.Token = "jwt-token"
			payload.Role = RoleUser
			payload.FullName = "Linh Tran"
			return nil
		},
	}
	manager := NewManager(store, api, testLogger())

	sessionID, current, err := manager.Login(context.Background(), Credentials{
		Email:    "  Linh.Tran@Example.COM ",
		Password: "secret",
	})

	require.NoError(t, err)
	require.NotEmpty(t, sessionID)
	assert.Equal(t, "jwt-token", current.Token)
	assert.Equal(t, RoleUser, current.Role)
	assert.Equal(t, "linh.tran@example.com", current.Email)
	assert.Equal(t, "Linh Tran", current.DisplayName)

	stored, err := store.Find(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", stored.Token)
}

func TestManagerLoginRejectsEmptyToken(t *testing.T) {
	api := &fakeAuthClient{
		post: func(_ context.Context, _ string, _ url.Values, _, out any) error {
			payload := out.(*loginResponse)
			payload.Message = "logged in"
			return nil
		},
	}
	manager := NewManager(NewMemoryStore(), api, testLogger())

	_, _, err := manager.Login(context.Background(), Credentials{Email: "a@b.c", Password: "x"})

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 401, appError.HTTPStatus)
}

func TestManagerLoginRejectsUnknownRole(t *testing.T) {
	api := &fakeAuthClient{
		post: func(_ context.Context, _ string, _ url.Values, _, out any) error {
			payload := out.(*loginResponse)
			payload.Token = "jwt-token"
			payload.Role = Role("ROLE_AUDITOR")
			return nil
		},
	}
	manager := NewManager(NewMemoryStore(), api, testLogger())

	_, _, err := manager.Login(context.Background(), Credentials{Email: "a@b.c", Password: "x"})

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 401, appError.HTTPStatus)
}

func TestManagerLogoutClearsCachesBeforeSession(t *testing.T) {
	var events []string
	store := &recordingStore{MemoryStore: NewMemoryStore(), events: &events}
	manager := NewManager(store, &fakeAuthClient{}, testLogger())
	manager.RegisterCacheResetter(&recordingResetter{events: &events, label: "cart"})
	manager.RegisterCacheResetter(&recordingResetter{events: &events, label: "wishlist"})

	require.NoError(t, store.Save(context.Background(), "sid-1", &Session{Token: "t", Role: RoleUser}, time.Minute))
	require.NoError(t, manager.Logout(context.Background(), "sid-1"))

	assert.Equal(t, []string{"cart", "wishlist", "store_delete"}, events)

	_, err := store.Find(context.Background(), "sid-1")
	require.Error(t, err)
}

func TestManagerForceLogoutSwallowsFailures(t *testing.T) {
	var events []string
	store := &recordingStore{
		MemoryStore: NewMemoryStore(),
		events:      &events,
		deleteErr:   errors.New("redis down"),
	}
	manager := NewManager(store, &fakeAuthClient{}, testLogger())
	manager.RegisterCacheResetter(&recordingResetter{events: &events, label: "cart", err: errors.New("redis down")})

	manager.ForceLogout(context.Background(), "sid-1")

	assert.Equal(t, []string{"cart", "store_delete"}, events)
}

func TestManagerForceLogoutWithoutSessionIsNoop(t *testing.T) {
	var events []string
	store := &recordingStore{MemoryStore: NewMemoryStore(), events: &events}
	manager := NewManager(store, &fakeAuthClient{}, testLogger())

	manager.ForceLogout(context.Background(), "")

	assert.Empty(t, events)
}

// The backend rejects registration and password-reset bodies missing any of
// its required fields, so the forwarded JSON must carry the full set.
func TestManagerForwardsCompleteAuthBodies(t *testing.T) {
	var body any
	api := &fakeAuthClient{
		post: func(_ context.Context, _ string, _ url.Values, requestBody, out any) error {
			body = requestBody
			payload := out.(*messageResponse)
			payload.Message = "ok"
			return nil
		},
	}
	manager := NewManager(NewMemoryStore(), api, testLogger())

	wireFields := func(t *testing.T) map[string]string {
		t.Helper()
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		fields := map[string]string{}
		require.NoError(t, json.Unmarshal(raw, &fields))
		return fields
	}

	_, err := manager.Register(context.Background(), RegisterInput{
		FullName:        "Linh Tran",
		Email:           "linh.tran@example.com",
		PhoneNumber:     "9876543210",
		Password:        "Str0ng!Pass",
		ConfirmPassword: "Str0ng!Pass",
		OTP:             "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"fullName":        "Linh Tran",
		"email":           "linh.tran@example.com",
		"phoneNumber":     "9876543210",
		"password":        "Str0ng!Pass",
		"confirmPassword": "Str0ng!Pass",
		"otp":             "123456",
	}, wireFields(t))

	_, err = manager.ResetPassword(context.Background(), ResetPasswordInput{
		Email:           "linh.tran@example.com",
		OTP:             "654321",
		Password:        "Str0ng!Pass",
		ConfirmPassword: "Str0ng!Pass",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"email":           "linh.tran@example.com",
		"otp":             "654321",
		"password":        "Str0ng!Pass",
		"confirmPassword": "Str0ng!Pass",
	}, wireFields(t))
}

func TestManagerAcknowledgedFlows(t *testing.T) {
	var gotPath string
	api := &fakeAuthClient{
		post: func(_ context.Context, path string, _ url.Values, _, out any) error {
			gotPath = path
			payload := out.(*messageResponse)
			payload.Message = "OTP sent to email"
			return nil
		},
	}
	manager := NewManager(NewMemoryStore(), api, testLogger())

	message, err := manager.SendRegistrationOTP(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "/auth/register/send-otp", gotPath)
	assert.Equal(t, "OTP sent to email", message)

	_, err = manager.Register(context.Background(), RegisterInput{Email: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, "/auth/register", gotPath)

	_, err = manager.SendPasswordResetOTP(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "/auth/forgot-password/send-otp", gotPath)

	_, err = manager.ResetPassword(context.Background(), ResetPasswordInput{Email: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, "/auth/forgot-password/reset", gotPath)
}
