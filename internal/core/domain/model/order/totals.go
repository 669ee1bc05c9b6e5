package order

import (
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Totals groups the caller-supplied monetary amounts of an order.
// The amounts are accepted as provided and never recomputed or cross-checked
// against the line items; pricing is the responsibility of the checkout layer.
type Totals struct {
	shippingCost decimal.Decimal
	subtotal     decimal.Decimal
	taxAmount    decimal.Decimal
	totalAmount  decimal.Decimal

	isConstructed bool
}

// NewTotals creates the order amounts with validation.
// All four amounts are required and must be non-negative.
func NewTotals(shippingCost, subtotal, taxAmount, totalAmount decimal.Decimal) (Totals, error) {
	for name, amount := range map[string]decimal.Decimal{
		"shipping cost": shippingCost,
		"subtotal":      subtotal,
		"tax amount":    taxAmount,
		"total amount":  totalAmount,
	} {
		if amount.IsNegative() {
			return Totals{}, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("%s is invalid", name),
				fmt.Errorf("%s is negative", amount.String()),
			)
		}
	}

	return Totals{
		shippingCost:  shippingCost,
		subtotal:      subtotal,
		taxAmount:     taxAmount,
		totalAmount:   totalAmount,
		isConstructed: true,
	}, nil
}

// ShippingCost returns the shipping cost.
func (t Totals) ShippingCost() decimal.Decimal {
	return t.shippingCost
}

// Subtotal returns the pre-tax item subtotal.
func (t Totals) Subtotal() decimal.Decimal {
	return t.subtotal
}

// TaxAmount returns the tax amount.
func (t Totals) TaxAmount() decimal.Decimal {
	return t.taxAmount
}

// TotalAmount returns the grand total.
func (t Totals) TotalAmount() decimal.Decimal {
	return t.totalAmount
}

// Validate returns an error for zero-value totals.
func (t Totals) Validate() error {
	if !t.isConstructed {
		return errs.NewValueIsRequiredError("totals must be created via NewTotals")
	}
	return nil
}
