// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package upstream implements the HTTP client for the commerce backend.

It provides uniform request dispatch with credential attachment and centralized
failure classification. Every feature of the gateway talks to the backend
through this one client and inherits its behavior for free:

  - The current session token is attached as a bearer credential, if present.
  - A 401 response triggers an immediate, unconditional session invalidation
    via the registered hook — forced logout happens here, at the transport
    layer, never at individual call sites.
  - Failures are classified into connectivity, timeout, and application
    errors so callers can show the right message without inspecting wire
    details.

The client holds no cache and performs no retries; all retries are
user-initiated.
*/
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/taibuivan/voltcart/internal/platform/apperr"
	"github.com/taibuivan/voltcart/internal/platform/constants"
	"github.com/taibuivan/voltcart/internal/platform/ctxutil"
)

// # Contracts & Types

// TokenSource yields the bearer credential for the current request, or ""
// for anonymous calls. It is injected at wiring time so this package does
// not depend on the session domain.
type TokenSource func(ctx context.Context) string

// AuthFailureHook is invoked exactly once per 401 response, before the error
// is returned to the caller. The hook must tolerate being called while the
// triggering operation is still mid-flight.
type AuthFailureHook func(ctx context.Context)

// Client dispatches JSON and multipart requests to the commerce backend.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	tokenSource   TokenSource
	onAuthFailure AuthFailureHook
	logger        *slog.Logger
}

// NewClient constructs a [Client] for the given backend base URL.
//
// The per-call timeout is intentionally generous ([constants.UpstreamTimeout]):
// some backend operations, such as OTP email dispatch, are legitimately slow
// and must not be misclassified as failures.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: constants.UpstreamTimeout,
		},
		tokenSource: func(context.Context) string { return "" },
		logger:      logger,
	}
}

// SetTokenSource installs the credential provider. Must be called during
// wiring, before the client serves requests.
func (client *Client) SetTokenSource(source TokenSource) {
	if source != nil {
		client.tokenSource = source
	}
}

// OnAuthFailure installs the forced-logout hook. Must be called during
// wiring, before the client serves requests.
func (client *Client) OnAuthFailure(hook AuthFailureHook) {
	client.onAuthFailure = hook
}

// # Request Dispatch

// Get performs a GET request and decodes the JSON response into out.
func (client *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return client.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

// Post performs a POST request with an optional JSON body.
func (client *Client) Post(ctx context.Context, path string, query url.Values, body, out any) error {
	return client.doJSON(ctx, http.MethodPost, path, query, body, out)
}

// Put performs a PUT request with an optional JSON body.
func (client *Client) Put(ctx context.Context, path string, query url.Values, body, out any) error {
	return client.doJSON(ctx, http.MethodPut, path, query, body, out)
}

// Patch performs a PATCH request with an optional JSON body.
func (client *Client) Patch(ctx context.Context, path string, query url.Values, body, out any) error {
	return client.doJSON(ctx, http.MethodPatch, path, query, body, out)
}

// Delete performs a DELETE request.
func (client *Client) Delete(ctx context.Context, path string, query url.Values, out any) error {
	return client.doJSON(ctx, http.MethodDelete, path, query, nil, out)
}

// Multipart forwards a multipart body (product/category image uploads)
// verbatim to the backend. contentType must be the original request's
// Content-Type header, which carries the multipart boundary.
func (client *Client) Multipart(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	return client.do(ctx, method, path, nil, contentType, body, out)
}

// doJSON marshals body (when non-nil) and dispatches the request.
func (client *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperr.Internal(fmt.Errorf("upstream_encode_failed: %w", err))
		}
		reader = bytes.NewReader(encoded)
	}
	return client.do(ctx, method, path, query, "application/json", reader, out)
}

// do executes one request/response cycle with credential attachment and
// failure classification. It is the single funnel for all upstream traffic.
func (client *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out any) error {
	target := client.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return apperr.Internal(fmt.Errorf("upstream_request_build_failed: %w", err))
	}

	if body != nil {
		request.Header.Set("Content-Type", contentType)
	}
	request.Header.Set("Accept", "application/json")
	if requestID := ctxutil.GetRequestID(ctx); requestID != "" {
		request.Header.Set(constants.HeaderXRequestID, requestID)
	}

	// ── 1. Credential Attachment ──────────────────────────────────────────
	if token := client.tokenSource(ctx); token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	// ── 2. Dispatch & Transport Classification ────────────────────────────
	response, err := client.httpClient.Do(request)
	if err != nil {
		return client.classifyTransport(ctx, err)
	}
	defer response.Body.Close()

	// ── 3. Authentication Failure (globally fatal) ────────────────────────
	if response.StatusCode == http.StatusUnauthorized {
		client.logger.WarnContext(ctx, "upstream_auth_rejected",
			slog.String("method", method),
			slog.String("path", path),
		)
		if client.onAuthFailure != nil {
			client.onAuthFailure(ctx)
		}
		return apperr.SessionExpired()
	}

	// ── 4. Application Failure (message passed through) ───────────────────
	if response.StatusCode >= 400 {
		return apperr.Upstream(response.StatusCode, readErrorMessage(response.Body))
	}

	// ── 5. Success Decoding ───────────────────────────────────────────────
	if out == nil {
		_, _ = io.Copy(io.Discard, response.Body)
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return apperr.Internal(fmt.Errorf("upstream_decode_failed: %w", err))
	}
	return nil
}

// # Failure Classification

// classifyTransport maps a transport-level error onto the taxonomy.
//
// Timeout covers both the client budget and the request context deadline;
// everything else that produced no response is a connectivity failure.
func (client *Client) classifyTransport(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Timeout(err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return apperr.Timeout(err)
	}

	client.logger.ErrorContext(ctx, "upstream_unreachable", slog.String("error", err.Error()))
	return apperr.Unreachable(err)
}

// errorBody covers the backend's two error payload spellings.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// readErrorMessage extracts the human-readable message from a structured
// error payload, returning "" when the body is empty or not JSON.
func readErrorMessage(body io.Reader) string {
	var payload errorBody
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
