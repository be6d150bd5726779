// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/voltcart/internal/platform/apperr"
)

type fakeBackend struct {
	lastPath  string
	lastQuery url.Values
	lastBody  any
	payload   string
	err       error
}

func (f *fakeBackend) Get(_ context.Context, path string, query url.Values, out any) error {
	f.lastPath = path
	f.lastQuery = query
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.payload), out)
}

func (f *fakeBackend) Post(_ context.Context, path string, query url.Values, body, out any) error {
	f.lastPath = path
	f.lastQuery = query
	f.lastBody = body
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.payload), out)
}

func validAddress() Address {
	return Address{
		Locality: "Indiranagar",
		Address:  "221B 12th Main Road, Stage 2",
		City:     "Bengaluru",
		State:    "Karnataka",
		PinCode:  "560038",
		Mobile:   "9876543210",
	}
}

func newTestService(backend *fakeBackend) *Service {
	return NewService(backend, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Address)
		valid  bool
	}{
		{name: "valid address", mutate: func(*Address) {}, valid: true},
		{name: "missing locality", mutate: func(a *Address) { a.Locality = "" }, valid: false},
		{name: "missing city", mutate: func(a *Address) { a.City = "" }, valid: false},
		{name: "missing state", mutate: func(a *Address) { a.State = "" }, valid: false},
		{name: "address too short", mutate: func(a *Address) { a.Address = "short st" }, valid: false},
		{name: "pin code too short", mutate: func(a *Address) { a.PinCode = "5600" }, valid: false},
		{name: "pin code with letters", mutate: func(a *Address) { a.PinCode = "56003a" }, valid: false},
		{name: "mobile with bad prefix", mutate: func(a *Address) { a.Mobile = "1234567890" }, valid: false},
		{name: "mobile too long", mutate: func(a *Address) { a.Mobile = "98765432101" }, valid: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			address := validAddress()
			testCase.mutate(&address)

			err := ValidateAddress(address)
			if testCase.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				appError := apperr.As(err)
				require.NotNil(t, appError)
				assert.Equal(t, 400, appError.HTTPStatus)
			}
		})
	}
}

func TestSubmitPlacesOrderAndReturnsPaymentLink(t *testing.T) {
	backend := &fakeBackend{payload: `{
		"orderId": 314,
		"amount": 3000,
		"paymentMethod": "RAZORPAY",
		"message": "Payment link created successfully",
		"paymentUrl": "https://rzp.io/l/abc123",
		"paymentLinkId": "plink_abc123"
	}`}
	service := newTestService(backend)
	flow := NewFlow()

	link, err := service.Submit(context.Background(), flow, validAddress())

	require.NoError(t, err)
	assert.Equal(t, "/orders", backend.lastPath)
	assert.Equal(t, "RAZORPAY", backend.lastQuery.Get("paymentMethod"))
	assert.Equal(t, int64(314), link.OrderID)
	assert.Equal(t, "https://rzp.io/l/abc123", link.PaymentURL)
	assert.Equal(t, "plink_abc123", link.PaymentLinkID)
	assert.Equal(t, StateAwaitingExternalPayment, flow.State())

	// The address goes upstream exactly as validated.
	sent, ok := backend.lastBody.(Address)
	require.True(t, ok)
	assert.Equal(t, validAddress(), sent)
}

func TestSubmitRejectsInvalidAddressBeforeUpstream(t *testing.T) {
	backend := &fakeBackend{}
	service := newTestService(backend)
	flow := NewFlow()

	address := validAddress()
	address.PinCode = "12"

	_, err := service.Submit(context.Background(), flow, address)

	require.Error(t, err)
	assert.Empty(t, backend.lastPath)
	assert.Equal(t, StateEditing, flow.State())
}

func TestSubmitUpstreamFailureReturnsToEditing(t *testing.T) {
	backend := &fakeBackend{err: errors.New("upstream unreachable")}
	service := newTestService(backend)
	flow := NewFlow()

	_, err := service.Submit(context.Background(), flow, validAddress())

	require.Error(t, err)
	assert.Equal(t, StateEditing, flow.State())
}

func TestVerifyPaymentSuccess(t *testing.T) {
	backend := &fakeBackend{payload: `{"message": "Payment successful"}`}
	service := newTestService(backend)
	flow := Resume(StateAwaitingExternalPayment)

	result := service.VerifyPayment(context.Background(), flow, "pay_123", "plink_abc123")

	assert.True(t, result.Verified)
	assert.Equal(t, "Payment successful", result.Message)
	assert.Equal(t, "/payment/pay_123", backend.lastPath)
	assert.Equal(t, "plink_abc123", backend.lastQuery.Get("paymentLinkId"))
	assert.Equal(t, StateDone, flow.State())
}

func TestVerifyPaymentFailureIsSwallowed(t *testing.T) {
	backend := &fakeBackend{err: apperr.Upstream(400, "Payment failed or verification unsuccessful.")}
	service := newTestService(backend)
	flow := Resume(StateAwaitingExternalPayment)

	result := service.VerifyPayment(context.Background(), flow, "pay_123", "plink_abc123")

	assert.False(t, result.Verified)
	assert.NotEmpty(t, result.Message)
	assert.Equal(t, StateDone, flow.State())
}

func TestFlowTransitions(t *testing.T) {
	flow := NewFlow()
	assert.Equal(t, StateEditing, flow.State())

	require.NoError(t, flow.Advance(StateValidating))
	require.NoError(t, flow.Advance(StateSubmitting))
	require.NoError(t, flow.Advance(StateAwaitingExternalPayment))
	require.NoError(t, flow.Advance(StateVerifying))
	require.NoError(t, flow.Advance(StateDone))
}

func TestFlowRejectsSkippedStates(t *testing.T) {
	flow := NewFlow()

	assert.Error(t, flow.Advance(StateSubmitting))
	assert.Error(t, flow.Advance(StateAwaitingExternalPayment))
	assert.Error(t, flow.Advance(StateDone))
	assert.Equal(t, StateEditing, flow.State())
}

func TestFlowAbort(t *testing.T) {
	flow := NewFlow()
	require.NoError(t, flow.Advance(StateValidating))
	require.NoError(t, flow.Abort())
	assert.Equal(t, StateEditing, flow.State())

	// Once the payment link exists the order cannot be unwound.
	placed := Resume(StateAwaitingExternalPayment)
	assert.Error(t, placed.Abort())
}
