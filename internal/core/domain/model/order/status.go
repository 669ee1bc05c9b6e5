package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Forward movement follows the flow above; Cancelled is reachable only from
// Pending or Processing and only through Cancel, never through TransitionTo.
// One historical quirk is preserved deliberately: TransitionTo accepts Pending
// as a target regardless of the current position in the flow, so an order can
// be reset to Pending even after shipping (see TransitionTo).
//
// Status is persisted and exchanged by its string form; the string values are
// part of the wire contract and must not change.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status entered at order creation.
	Pending

	// Processing indicates the store has started fulfilling the order.
	Processing

	// Shipped indicates the order left the store and is in transit.
	Shipped

	// Delivered indicates the order reached the customer.
	// This is a terminal state of the forward flow.
	Delivered

	// Cancelled indicates the order was cancelled before shipping.
	// This is an absorbing state with no outgoing transitions.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire strings.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		Processing:    "processing",
		Shipped:       "shipped",
		Delivered:     "delivered",
		Cancelled:     "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// statusFlow is the forward fulfillment sequence. Cancelled is deliberately
// not part of the flow; it is only reachable through Cancel.
func statusFlow() []Status {
	return []Status{Pending, Processing, Shipped, Delivered}
}

// flowIndex returns the position of the status in the forward flow,
// or false if the status is not part of it (Cancelled, StatusUnknown).
func (s Status) flowIndex() (int, bool) {
	for i, status := range statusFlow() {
		if s == status {
			return i, true
		}
	}
	return 0, false
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Shipped, Delivered, Cancelled.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire string of the status ("pending", "processing",
// "shipped", "delivered", "cancelled"), or "unknown" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire string into a Status.
// Returns an error for strings outside the contract.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// TransitionTo validates a forward-flow transition and returns the new status.
//
// Rules:
//   - The target must be one of the forward-flow statuses
//     (Pending, Processing, Shipped, Delivered). Cancelled must go through
//     Cancel and is rejected here.
//   - The current status must be in the forward flow; no transition is
//     permitted out of Cancelled.
//   - Moving backward in the flow is rejected, with one long-standing quirk:
//     a target of Pending is accepted from any flow position. Callers may
//     depend on this reset path, so it is kept rather than silently fixed.
//   - Re-setting the current status (no-op reconfirmation) is accepted.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (StatusUnknown, InvalidTransitionError) otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	targetIndex, ok := target.flowIndex()
	if !ok {
		return StatusUnknown, errs.NewInvalidTransitionErrorWithCause(
			"invalid status transition",
			fmt.Errorf("%s is not a forward-flow status", target.String()),
		)
	}

	currentIndex, ok := s.flowIndex()
	if !ok {
		return StatusUnknown, errs.NewInvalidTransitionErrorWithCause(
			"invalid status transition",
			fmt.Errorf("no transition is permitted from %s", s.String()),
		)
	}

	if targetIndex < currentIndex && targetIndex != 0 {
		return StatusUnknown, errs.NewInvalidTransitionErrorWithCause(
			"invalid status transition",
			fmt.Errorf("cannot move backward from %s to %s", s.String(), target.String()),
		)
	}

	return target, nil
}

// Deliver transitions the status to Delivered through the delivery
// confirmation path. Only Shipped orders can be confirmed delivered.
//
// Returns:
//   - (Delivered, nil) when the current status is Shipped
//   - (StatusUnknown, InvalidTransitionError) otherwise
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return StatusUnknown, errs.NewInvalidTransitionErrorWithCause(
			"must be shipped before delivery confirmation",
			fmt.Errorf("current status is %s", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
// Only Pending and Processing orders can be cancelled; Shipped, Delivered
// and already Cancelled orders are rejected.
//
// Returns:
//   - (Cancelled, nil) when cancellation is allowed
//   - (StatusUnknown, InvalidTransitionError) otherwise
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Processing {
		return StatusUnknown, errs.NewInvalidTransitionErrorWithCause(
			"cannot cancel this order",
			fmt.Errorf("current status is %s", s.String()),
		)
	}

	return Cancelled, nil
}
