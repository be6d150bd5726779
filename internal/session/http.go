// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/voltcart/internal/platform/constants"
	"github.com/taibuivan/voltcart/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/voltcart/internal/platform/request"
	"github.com/taibuivan/voltcart/internal/platform/respond"
	"github.com/taibuivan/voltcart/internal/platform/validate"
)

var phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)

// Handler exposes the authentication surface: login, logout, registration,
// and password recovery. It is the only handler that writes the session cookie.
type Handler struct {
	manager       *Manager
	secureCookies bool
}

// NewHandler constructs the auth [Handler]. secureCookies should be true in
// production so the session cookie is never sent over plain HTTP.
func NewHandler(manager *Manager, secureCookies bool) *Handler {
	return &Handler{manager: manager, secureCookies: secureCookies}
}

// Routes builds the auth router. entryGate guards the routes that only make
// sense for signed-out visitors; an authenticated caller is redirected to
// their role's home instead. Logout and the session probe stay ungated: both
// behave sensibly for any caller.
func (handler *Handler) Routes(entryGate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Group(func(entry chi.Router) {
		entry.Use(entryGate)
		entry.Post("/login", handler.login)
		entry.Post("/register/send-otp", handler.sendRegistrationOTP)
		entry.Post("/register", handler.register)
		entry.Post("/forgot-password/send-otp", handler.sendPasswordResetOTP)
		entry.Post("/forgot-password/reset", handler.resetPassword)
	})

	router.Post("/logout", handler.logout)
	router.Get("/me", handler.me)

	return router
}

// # Session Establishment

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var credentials Credentials
	if err := requestutil.DecodeJSON(request, &credentials); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Required("email", credentials.Email).
		Email("email", credentials.Email).
		Required("password", credentials.Password)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	sessionID, current, err := handler.manager.Login(request.Context(), credentials)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setSessionCookie(writer, sessionID)
	respond.OK(writer, loginView{
		Role:        current.Role,
		DisplayName: current.DisplayName,
		Email:       current.Email,
		HomeRoute:   current.Role.HomeRoute(),
	})
}

func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	sessionID := ctxutil.GetSessionID(request.Context())
	if sessionID != "" {
		if err := handler.manager.Logout(request.Context(), sessionID); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	handler.clearSessionCookie(writer)
	respond.OK(writer, map[string]string{constants.FieldMessage: "Logged out"})
}

func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	current, err := RequiredFromContext(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, loginView{
		Role:        current.Role,
		DisplayName: current.DisplayName,
		Email:       current.Email,
		HomeRoute:   current.Role.HomeRoute(),
	})
}

// loginView is what the browser learns about its own session. The upstream
// token is deliberately absent.
type loginView struct {
	Role        Role   `json:"role"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	HomeRoute   string `json:"home_route"`
}

// # Registration & Recovery

type emailInput struct {
	Email string `json:"email"`
}

func (handler *Handler) sendRegistrationOTP(writer http.ResponseWriter, request *http.Request) {
	handler.acknowledge(writer, request, func(email string) (string, error) {
		return handler.manager.SendRegistrationOTP(request.Context(), email)
	})
}

func (handler *Handler) sendPasswordResetOTP(writer http.ResponseWriter, request *http.Request) {
	handler.acknowledge(writer, request, func(email string) (string, error) {
		return handler.manager.SendPasswordResetOTP(request.Context(), email)
	})
}

// acknowledge handles both OTP-send endpoints, which share their shape.
func (handler *Handler) acknowledge(writer http.ResponseWriter, request *http.Request, send func(email string) (string, error)) {
	var input emailInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Required("email", input.Email).
		Email("email", input.Email)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	message, err := send(input.Email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{constants.FieldMessage: message})
}

func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input RegisterInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Required("fullName", input.FullName).
		Required("email", input.Email).
		Email("email", input.Email).
		Matches("phoneNumber", input.PhoneNumber, phoneRegex, "Phone number must be 10 digits").
		Required("password", input.Password).
		Password("password", input.Password).
		Custom("confirmPassword", input.ConfirmPassword != input.Password, "Passwords do not match").
		Required("otp", input.OTP)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	message, err := handler.manager.Register(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, map[string]string{constants.FieldMessage: message})
}

func (handler *Handler) resetPassword(writer http.ResponseWriter, request *http.Request) {
	var input ResetPasswordInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Required("email", input.Email).
		Email("email", input.Email).
		Required("otp", input.OTP).
		Required("password", input.Password).
		Password("password", input.Password).
		Custom("confirmPassword", input.ConfirmPassword != input.Password, "Passwords do not match")
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	message, err := handler.manager.ResetPassword(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{constants.FieldMessage: message})
}

// # Cookie Management

func (handler *Handler) setSessionCookie(writer http.ResponseWriter, sessionID string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(constants.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (handler *Handler) clearSessionCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
