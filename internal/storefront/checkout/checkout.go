// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package checkout turns a cart into a placed order with an external payment.

The flow is deliberately rigid. A checkout attempt moves through a fixed
sequence of states and can never skip ahead:

	Editing → Validating → Submitting → AwaitingExternalPayment → Verifying → Done

Validation happens entirely before submission, mirroring the backend's own
address rules, so a request that passes the gateway is never rejected
upstream for a malformed address. Payment itself happens outside both the
gateway and the backend, on the payment provider's hosted page; the gateway
only hands out the payment link and later verifies the outcome best-effort.
*/
package checkout

import "fmt"

// Address is the shipping address collected at checkout.
type Address struct {
	Locality string `json:"locality"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	PinCode  string `json:"pinCode"`
	Mobile   string `json:"mobile"`
}

// PaymentLink is the outcome of a successful submission: the order exists
// and the shopper must complete payment at the external URL.
type PaymentLink struct {
	OrderID       int64  `json:"order_id"`
	Amount        int    `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	PaymentURL    string `json:"payment_url"`
	PaymentLinkID string `json:"payment_link_id"`
	Message       string `json:"message"`
}

// # Flow States

// State identifies where a checkout attempt currently stands.
type State string

const (
	// StateEditing collects the shipping address.
	StateEditing State = "EDITING"

	// StateValidating runs the address rules.
	StateValidating State = "VALIDATING"

	// StateSubmitting places the order and requests the payment link.
	StateSubmitting State = "SUBMITTING"

	// StateAwaitingExternalPayment waits on the provider's hosted page.
	StateAwaitingExternalPayment State = "AWAITING_EXTERNAL_PAYMENT"

	// StateVerifying confirms the payment outcome with the backend.
	StateVerifying State = "VERIFYING"

	// StateDone terminates the flow.
	StateDone State = "DONE"
)

// transitions is the complete set of legal state moves.
var transitions = map[State]State{
	StateEditing:                 StateValidating,
	StateValidating:              StateSubmitting,
	StateSubmitting:              StateAwaitingExternalPayment,
	StateAwaitingExternalPayment: StateVerifying,
	StateVerifying:               StateDone,
}

// Flow tracks one checkout attempt through its states.
type Flow struct {
	state State
}

// NewFlow starts a checkout attempt in [StateEditing].
func NewFlow() *Flow {
	return &Flow{state: StateEditing}
}

// Resume reconstructs a flow at a known state. Used when the shopper comes
// back from the external payment page in a fresh request.
func Resume(state State) *Flow {
	return &Flow{state: state}
}

// State returns the current state.
func (flow *Flow) State() State {
	return flow.state
}

// Advance moves the flow to the next state.
//
// Only the single successor of the current state is legal; anything else
// indicates a logic error and is rejected.
func (flow *Flow) Advance(next State) error {
	if transitions[flow.state] != next {
		return fmt.Errorf("checkout: illegal transition %s -> %s", flow.state, next)
	}
	flow.state = next
	return nil
}

// Abort returns the flow to [StateEditing] from any pre-payment state.
// Once the payment link exists the order is placed and cannot be unwound
// by the gateway.
func (flow *Flow) Abort() error {
	switch flow.state {
	case StateEditing, StateValidating, StateSubmitting:
		flow.state = StateEditing
		return nil
	default:
		return fmt.Errorf("checkout: cannot abort from %s", flow.state)
	}
}
