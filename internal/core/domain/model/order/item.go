package order

import (
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is one embedded line item of an order: a product reference with the
// quantity and unit price captured at purchase time. Items have no identity of
// their own and are immutable once the order is created; the referenced
// product is an opaque identifier that is never checked for existence here.
type Item struct {
	productID string
	name      string
	quantity  int
	price     decimal.Decimal
	image     string

	isConstructed bool
}

// NewItem creates a line item with validation.
// productID and name are required, quantity must be positive and the unit
// price non-negative. image is an optional URL and may be empty.
func NewItem(productID string, name string, quantity int, price decimal.Decimal, image string) (Item, error) {
	if productID == "" {
		return Item{}, errs.NewValueIsRequiredError("item product id")
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"item quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if price.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"item price is invalid",
			fmt.Errorf("%s is negative", price.String()),
		)
	}

	return Item{
		productID: productID,
		name:      name,
		quantity:  quantity,
		price:     price,
		image:     image,

		isConstructed: true,
	}, nil
}

// ProductID returns the opaque product reference.
func (i Item) ProductID() string {
	return i.productID
}

// Name returns the product name captured at purchase time.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price captured at purchase time.
func (i Item) Price() decimal.Decimal {
	return i.price
}

// Image returns the optional product image URL ("" when absent).
func (i Item) Image() string {
	return i.image
}

// Validate returns an error for items not built through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return errs.NewValueIsRequiredError("item must be created via NewItem")
	}
	return nil
}
