// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package account exposes the shopper's own profile: viewing and editing
// personal details and changing the password. All state lives upstream.
package account

// Profile is the shopper's account as served by the gateway.
type Profile struct {
	ID          int64  `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Verified    bool   `json:"verified"`
}

// UpdateInput carries the editable profile fields.
type UpdateInput struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
}

// ChangePasswordInput carries a password rotation request.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
