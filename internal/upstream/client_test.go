// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package upstream

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/voltcart/internal/platform/apperr"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClientAttachesBearerToken(t *testing.T) {
	var captured string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		captured = request.Header.Get("Authorization")
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, discardLogger())
	client.SetTokenSource(func(context.Context) string { return "token-abc" })

	var out map[string]bool
	err := client.Get(context.Background(), "/products", nil, &out)

	require.NoError(t, err)
	assert.Equal(t, "Bearer token-abc", captured)
	assert.True(t, out["ok"])
}

func TestClientAnonymousRequestOmitsAuthorization(t *testing.T) {
	var captured string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		captured = request.Header.Get("Authorization")
		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, discardLogger())

	err := client.Get(context.Background(), "/products", nil, nil)

	require.NoError(t, err)
	assert.Empty(t, captured)
}

func TestClientUnauthorizedInvokesHookAndReturnsSessionExpired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, discardLogger())
	hookCalls := 0
	client.OnAuthFailure(func(context.Context) { hookCalls++ })

	err := client.Get(context.Background(), "/user/cart", nil, nil)

	require.Error(t, err)
	assert.True(t, apperr.IsSessionExpired(err))
	assert.Equal(t, 1, hookCalls)
}

func TestClientApplicationErrorCarriesUpstreamMessage(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "message field",
			status:      http.StatusBadRequest,
			body:        `{"message":"Invalid OTP"}`,
			wantMessage: "Invalid OTP",
		},
		{
			name:        "error field fallback",
			status:      http.StatusConflict,
			body:        `{"error":"Email already registered"}`,
			wantMessage: "Email already registered",
		},
		{
			name:        "unparseable body",
			status:      http.StatusBadRequest,
			body:        `oops`,
			wantMessage: "",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(testCase.status)
				_, _ = writer.Write([]byte(testCase.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, discardLogger())
			err := client.Post(context.Background(), "/auth/register", nil, map[string]string{}, nil)

			require.Error(t, err)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, testCase.status, appError.HTTPStatus)
			if testCase.wantMessage != "" {
				assert.Equal(t, testCase.wantMessage, appError.Message)
			}
		})
	}
}

func TestClientTimeoutClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		select {
		case <-request.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := client.Get(ctx, "/orders/user", nil, nil)

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, apperr.CodeUpstreamTimeout, appError.Code)
	assert.Equal(t, http.StatusGatewayTimeout, appError.HTTPStatus)
}

func TestClientConnectivityFailureClassification(t *testing.T) {
	// A server that is already closed guarantees a refused connection.
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, discardLogger())

	err := client.Get(context.Background(), "/products", nil, nil)

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, apperr.CodeUpstreamUnreachable, appError.Code)
	assert.Equal(t, http.StatusBadGateway, appError.HTTPStatus)
}

func TestClientQueryEncoding(t *testing.T) {
	var captured string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		captured = request.URL.RawQuery
		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, discardLogger())

	query := map[string][]string{"category": {"summer wear"}, "page": {"2"}}
	err := client.Get(context.Background(), "/products", query, nil)

	require.NoError(t, err)
	assert.Equal(t, "category=summer+wear&page=2", captured)
}
