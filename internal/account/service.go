// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"log/slog"
	"net/url"
	"regexp"

	"github.com/taibuivan/voltcart/internal/platform/validate"
)

// Backend is the slice of the upstream client the account needs.
type Backend interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Put(ctx context.Context, path string, query url.Values, body, out any) error
}

var phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)

type Service struct {
	api    Backend
	logger *slog.Logger
}

func NewService(api Backend, logger *slog.Logger) *Service {
	return &Service{api: api, logger: logger}
}

// springUser mirrors the backend's user serialization. The password never
// appears in it.
type springUser struct {
	ID          int64  `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Verified    bool   `json:"verified"`
}

// # Operations

// Get fetches the shopper's own profile.
func (service *Service) Get(ctx context.Context) (*Profile, error) {
	var payload springUser
	if err := service.api.Get(ctx, "/user/profile", nil, &payload); err != nil {
		return nil, err
	}
	return toProfile(payload), nil
}

// Update edits the profile and returns its new state.
func (service *Service) Update(ctx context.Context, input UpdateInput) (*Profile, error) {
	validator := &validate.Validator{}
	validator.Required("fullName", input.FullName)
	if input.PhoneNumber != "" {
		validator.Matches("phoneNumber", input.PhoneNumber, phoneRegex, "Phone number must be 10 digits")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	var payload springUser
	if err := service.api.Put(ctx, "/user/profile", nil, input, &payload); err != nil {
		return nil, err
	}
	return toProfile(payload), nil
}

// ChangePassword rotates the account password.
//
// The strength rules are mirrored from the backend so the failure surfaces
// before the round trip.
func (service *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	validator := &validate.Validator{}
	validator.
		Required("oldPassword", input.OldPassword).
		Required("newPassword", input.NewPassword).
		Password("newPassword", input.NewPassword)
	if err := validator.Err(); err != nil {
		return err
	}

	return service.api.Put(ctx, "/user/change-password", nil, input, nil)
}

func toProfile(payload springUser) *Profile {
	return &Profile{
		ID:          payload.ID,
		FullName:    payload.FullName,
		Email:       payload.Email,
		PhoneNumber: payload.PhoneNumber,
		Verified:    payload.Verified,
	}
}
