package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// PaymentStatus represents the settlement state of an order's payment.
// Every order starts as PaymentPending regardless of payment method;
// cash-on-delivery orders flip to PaymentPaid when delivery is confirmed.
// The string values are part of the wire contract and must not change.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending indicates payment has not settled yet.
	PaymentPending

	// PaymentPaid indicates payment has settled.
	PaymentPaid

	// PaymentFailed indicates the payment attempt failed.
	PaymentFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentStatusUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending: "pending",
		PaymentPaid:    "paid",
		PaymentFailed:  "failed",
	}
}

// Validate checks if the PaymentStatus value is valid.
func (p PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", p),
		)
	}
	return nil
}

// String returns the wire string of the payment status ("pending", "paid",
// "failed"), or "unknown" for invalid values. Implements fmt.Stringer.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// PaymentStatusFromString parses a wire string into a PaymentStatus.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// PaymentMethod represents how the customer pays for an order.
// The method never changes after creation and only influences the
// cash-on-delivery settlement side effect on delivery confirmation.
// The string values are part of the wire contract and must not change.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	PaymentMethodUnknown PaymentMethod = iota

	// CreditCard is card payment collected at checkout.
	CreditCard

	// PayPal is PayPal payment collected at checkout.
	PayPal

	// CashOnDelivery is cash collected when the order is delivered.
	CashOnDelivery
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentMethodUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		CreditCard:     "credit_card",
		PayPal:         "paypal",
		CashOnDelivery: "cash_on_delivery",
	}
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the wire string of the payment method ("credit_card",
// "paypal", "cash_on_delivery"), or "unknown" for invalid values.
// Implements fmt.Stringer.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// PaymentMethodFromString parses a wire string into a PaymentMethod.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}
