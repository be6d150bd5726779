// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/taibuivan/voltcart/internal/platform/apperr"
	"github.com/taibuivan/voltcart/internal/platform/constants"
	"github.com/taibuivan/voltcart/pkg/uuid"
)

// # Contracts & Types

// AuthClient is the slice of the backend client the manager needs for the
// authentication endpoints.
type AuthClient interface {
	// Post performs a POST request against the backend.
	//
	// Parameters:
	//   - ctx: request-scoped context.
	//   - path: backend path, e.g. "/auth/login".
	//   - query: optional query parameters.
	//   - body: JSON-encoded request body, may be nil.
	//   - out: decode target for the response body, may be nil.
	//
	// Returns:
	//   - error: classified backend or transport failure.
	Post(ctx context.Context, path string, query url.Values, body, out any) error
}

// CacheResetter clears per-session derived state. Both the cart and wishlist
// caches implement it so the manager can wipe them on logout without knowing
// what they hold.
type CacheResetter interface {
	Reset(ctx context.Context, sessionID string) error
}

// Manager owns the session lifecycle: establishing a session at login,
// tearing it down at logout, and rehydrating it on subsequent requests.
type Manager struct {
	store  Store
	api    AuthClient
	caches []CacheResetter
	logger *slog.Logger
}

// NewManager constructs a [Manager].
func NewManager(store Store, api AuthClient, logger *slog.Logger) *Manager {
	return &Manager{
		store:  store,
		api:    api,
		logger: logger,
	}
}

// RegisterCacheResetter adds a per-session cache to be cleared on logout.
// Must be called during wiring, before the manager serves requests.
func (manager *Manager) RegisterCacheResetter(resetter CacheResetter) {
	manager.caches = append(manager.caches, resetter)
}

// # Inputs & Results

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput completes a registration that was started with an OTP send.
// The backend requires every field, confirmPassword included; the gateway
// forwards the body as-is after its own validation pass.
type RegisterInput struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	OTP             string `json:"otp"`
}

// ResetPasswordInput completes a password reset with the emailed OTP.
type ResetPasswordInput struct {
	Email           string `json:"email"`
	OTP             string `json:"otp"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// loginResponse mirrors the backend's login payload.
type loginResponse struct {
	Token    string `json:"jwt"`
	Role     Role   `json:"role"`
	FullName string `json:"fullName"`
	Message  string `json:"message"`
}

// messageResponse is the backend's generic acknowledgment payload.
type messageResponse struct {
	Message string `json:"message"`
}

// # Session Lifecycle

// Login exchanges credentials for a backend token and establishes a new
// session. On success it returns the fresh session identifier (to be set as
// the browser cookie) alongside the hydrated session.
//
// A response without a token or with an unknown role is rejected: the
// gateway never stores a session it cannot classify.
func (manager *Manager) Login(ctx context.Context, credentials Credentials) (string, *Session, error) {
	var payload loginResponse
	if err := manager.api.Post(ctx, "/auth/login", nil, credentials, &payload); err != nil {
		return "", nil, err
	}

	if payload.Token == "" {
		return "", nil, apperr.Unauthorized("Invalid email or password")
	}
	if !payload.Role.Valid() {
		manager.logger.ErrorContext(ctx, "login_unknown_role", slog.String("role", string(payload.Role)))
		return "", nil, apperr.Unauthorized("Invalid email or password")
	}

	current := &Session{
		Token:       payload.Token,
		Role:        payload.Role,
		Email:       strings.ToLower(strings.TrimSpace(credentials.Email)),
		DisplayName: payload.FullName,
		UserID:      UserIDFromToken(payload.Token),
	}

	sessionID := uuid.New()
	if err := manager.store.Save(ctx, sessionID, current, constants.SessionTTL); err != nil {
		return "", nil, err
	}

	manager.logger.InfoContext(ctx, "session_established",
		slog.String("role", string(current.Role)),
		slog.Int64("user_id", current.UserID),
	)
	return sessionID, current, nil
}

// Hydrate loads the session for the given identifier. A missing or expired
// record yields apperr.NotFound; callers treat that as "anonymous".
func (manager *Manager) Hydrate(ctx context.Context, sessionID string) (*Session, error) {
	return manager.store.Find(ctx, sessionID)
}

// Logout tears down the session and every per-session cache.
//
// Caches are cleared before the session record is deleted so that a crash
// mid-logout can never leave orphaned cache entries behind a dead session.
func (manager *Manager) Logout(ctx context.Context, sessionID string) error {
	manager.resetCaches(ctx, sessionID)
	return manager.store.Delete(ctx, sessionID)
}

// ForceLogout is the 401-interception path: identical teardown to [Logout],
// but unconditional and best-effort. It must never fail the request that
// triggered it, so every error is logged and swallowed.
func (manager *Manager) ForceLogout(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	manager.resetCaches(ctx, sessionID)
	if err := manager.store.Delete(ctx, sessionID); err != nil {
		manager.logger.ErrorContext(ctx, "forced_logout_delete_failed", slog.String("error", err.Error()))
	}
	manager.logger.WarnContext(ctx, "session_force_terminated")
}

func (manager *Manager) resetCaches(ctx context.Context, sessionID string) {
	for _, cache := range manager.caches {
		if err := cache.Reset(ctx, sessionID); err != nil {
			manager.logger.ErrorContext(ctx, "session_cache_reset_failed", slog.String("error", err.Error()))
		}
	}
}

// # One-shot Auth Flows

// SendRegistrationOTP asks the backend to email a registration OTP. The
// backend's acknowledgment message is passed through verbatim.
func (manager *Manager) SendRegistrationOTP(ctx context.Context, email string) (string, error) {
	return manager.acknowledge(ctx, "/auth/register/send-otp", map[string]string{"email": email})
}

// Register completes a registration with the emailed OTP. It does not
// establish a session; the user logs in afterwards.
func (manager *Manager) Register(ctx context.Context, input RegisterInput) (string, error) {
	return manager.acknowledge(ctx, "/auth/register", input)
}

// SendPasswordResetOTP asks the backend to email a password-reset OTP.
func (manager *Manager) SendPasswordResetOTP(ctx context.Context, email string) (string, error) {
	return manager.acknowledge(ctx, "/auth/forgot-password/send-otp", map[string]string{"email": email})
}

// ResetPassword completes a password reset with the emailed OTP.
func (manager *Manager) ResetPassword(ctx context.Context, input ResetPasswordInput) (string, error) {
	return manager.acknowledge(ctx, "/auth/forgot-password/reset", input)
}

func (manager *Manager) acknowledge(ctx context.Context, path string, body any) (string, error) {
	var payload messageResponse
	if err := manager.api.Post(ctx, path, nil, body, &payload); err != nil {
		return "", err
	}
	return payload.Message, nil
}
