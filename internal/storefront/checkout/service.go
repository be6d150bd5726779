// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package checkout

import (
	"context"
	"log/slog"
	"net/url"
	"regexp"

	"github.com/taibuivan/voltcart/internal/platform/validate"
)

// Backend is the slice of the upstream client checkout needs.
type Backend interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, query url.Values, body, out any) error
}

// Address rules mirrored from the backend, enforced before submission.
var (
	pinCodeRegex = regexp.MustCompile(`^\d{6}$`)
	mobileRegex  = regexp.MustCompile(`^[6-9]\d{9}$`)
)

const minAddressLen = 10

type Service struct {
	api    Backend
	logger *slog.Logger
}

func NewService(api Backend, logger *slog.Logger) *Service {
	return &Service{api: api, logger: logger}
}

// # Validation

// ValidateAddress checks the shipping address against the backend's rules.
func ValidateAddress(address Address) error {
	validator := &validate.Validator{}
	validator.
		Required("locality", address.Locality).
		Required("address", address.Address).
		MinLen("address", address.Address, minAddressLen).
		Required("city", address.City).
		Required("state", address.State).
		Matches("pinCode", address.PinCode, pinCodeRegex, "Pin code must be exactly 6 digits").
		Matches("mobile", address.Mobile, mobileRegex, "Mobile must be a valid 10-digit number")
	return validator.Err()
}

// # Submission

// paymentLinkResponse mirrors the backend's payment link payload.
type paymentLinkResponse struct {
	OrderID       int64  `json:"orderId"`
	Amount        int    `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	Message       string `json:"message"`
	PaymentURL    string `json:"paymentUrl"`
	PaymentLinkID string `json:"paymentLinkId"`
}

// Submit validates the address, places the order, and returns the external
// payment link. On success the flow stands in [StateAwaitingExternalPayment]:
// the order exists upstream whether or not the shopper ever pays.
func (service *Service) Submit(ctx context.Context, flow *Flow, address Address) (*PaymentLink, error) {
	if err := flow.Advance(StateValidating); err != nil {
		return nil, err
	}

	if err := ValidateAddress(address); err != nil {
		// Back to the form; nothing was sent upstream.
		_ = flow.Abort()
		return nil, err
	}

	if err := flow.Advance(StateSubmitting); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("paymentMethod", "RAZORPAY")

	var payload paymentLinkResponse
	if err := service.api.Post(ctx, "/orders", query, address, &payload); err != nil {
		_ = flow.Abort()
		return nil, err
	}

	if err := flow.Advance(StateAwaitingExternalPayment); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "order_submitted",
		slog.Int64("order_id", payload.OrderID),
		slog.Int("amount", payload.Amount),
	)

	return &PaymentLink{
		OrderID:       payload.OrderID,
		Amount:        payload.Amount,
		PaymentMethod: payload.PaymentMethod,
		PaymentURL:    payload.PaymentURL,
		PaymentLinkID: payload.PaymentLinkID,
		Message:       payload.Message,
	}, nil
}

// # Payment Verification

// VerificationResult reports the backend's view of a payment outcome.
type VerificationResult struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
}

// VerifyPayment confirms the payment with the backend after the shopper
// returns from the provider's page.
//
// Verification is best-effort: the payment already happened externally, so
// a failure here must not look like a failed purchase. Errors are logged
// and reported as unverified, never propagated.
func (service *Service) VerifyPayment(ctx context.Context, flow *Flow, paymentID, paymentLinkID string) VerificationResult {
	if err := flow.Advance(StateVerifying); err != nil {
		service.logger.WarnContext(ctx, "payment_verify_out_of_order", slog.String("error", err.Error()))
	}

	query := url.Values{}
	query.Set("paymentLinkId", paymentLinkID)

	var payload struct {
		Message string `json:"message"`
	}
	err := service.api.Get(ctx, "/payment/"+paymentID, query, &payload)

	_ = flow.Advance(StateDone)

	if err != nil {
		service.logger.ErrorContext(ctx, "payment_verify_failed",
			slog.String("payment_id", paymentID),
			slog.String("error", err.Error()),
		)
		return VerificationResult{
			Verified: false,
			Message:  "Payment verification is pending. Your order will update once confirmed.",
		}
	}

	return VerificationResult{Verified: true, Message: payload.Message}
}
