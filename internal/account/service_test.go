// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/voltcart/internal/platform/apperr"
)

type fakeBackend struct {
	lastPath string
	lastBody any
	payload  springUser
	err      error
}

func (f *fakeBackend) Get(_ context.Context, path string, _ url.Values, out any) error {
	f.lastPath = path
	if f.err != nil {
		return f.err
	}
	*(out.(*springUser)) = f.payload
	return nil
}

func (f *fakeBackend) Put(_ context.Context, path string, _ url.Values, body, out any) error {
	f.lastPath = path
	f.lastBody = body
	if f.err != nil {
		return f.err
	}
	if out != nil {
		*(out.(*springUser)) = f.payload
	}
	return nil
}

func newService(backend *fakeBackend) *Service {
	return NewService(backend, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetProfile(t *testing.T) {
	backend := &fakeBackend{payload: springUser{
		ID: 7, FullName: "Linh Tran", Email: "linh@example.com", PhoneNumber: "9876543210", Verified: true,
	}}

	profile, err := newService(backend).Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/user/profile", backend.lastPath)
	assert.Equal(t, int64(7), profile.ID)
	assert.Equal(t, "Linh Tran", profile.FullName)
	assert.True(t, profile.Verified)
}

func TestUpdateProfileValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   UpdateInput
		wantErr bool
	}{
		{"valid", UpdateInput{FullName: "Linh Tran", PhoneNumber: "9876543210"}, false},
		{"phone optional", UpdateInput{FullName: "Linh Tran"}, false},
		{"missing name", UpdateInput{PhoneNumber: "9876543210"}, true},
		{"short phone", UpdateInput{FullName: "Linh Tran", PhoneNumber: "98765"}, true},
		{"alpha phone", UpdateInput{FullName: "Linh Tran", PhoneNumber: "98765abcde"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{}
			_, err := newService(backend).Update(context.Background(), tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, backend.lastPath, "invalid input must not reach the backend")
			} else {
				require.NoError(t, err)
				assert.Equal(t, "/user/profile", backend.lastPath)
			}
		})
	}
}

func TestChangePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		ok       bool
	}{
		{"valid", "Str0ng!Pass", true},
		{"too short", "S7!aBcd", false},
		{"no uppercase", "str0ng!pass", false},
		{"no lowercase", "STR0NG!PASS", false},
		{"no digit", "Strong!Pass", false},
		{"no special", "Str0ngPass", false},
		{"contains space", "Str0ng! Pass", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{}
			err := newService(backend).ChangePassword(context.Background(), ChangePasswordInput{
				OldPassword: "Old!Pass1",
				NewPassword: tt.password,
			})

			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, "/user/change-password", backend.lastPath)
			} else {
				require.Error(t, err)
				assert.NotNil(t, apperr.As(err))
				assert.Empty(t, backend.lastPath)
			}
		})
	}
}
