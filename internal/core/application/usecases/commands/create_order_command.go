package commands

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
	ErrStoreIDIsRequired    = errors.New("store id is required")
	ErrItemsAreRequired     = errors.New("at least one item is required")
)

// CreateOrderCommand represents a request to place a new order.
// It carries every caller-supplied order attribute; order number, status,
// payment status, order date and delivery timestamp are assigned by the
// handler and must not be provided.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("cust-1", "store-1", items,
//	    order.CashOnDelivery, address, totals, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      string
	storeID         string
	items           []order.Item
	paymentMethod   order.PaymentMethod
	shippingAddress order.Address
	totals          order.Totals
	trackingNumber  string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the customer and store references are non-empty, at least
// one item is present, and the payment method, address and totals are valid.
// The customer and store ids are opaque; their existence is checked by the
// respective collaborators, never here.
func NewCreateOrderCommand(
	customerID string,
	storeID string,
	items []order.Item,
	paymentMethod order.PaymentMethod,
	shippingAddress order.Address,
	totals order.Totals,
	trackingNumber string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setStoreID(storeID),
		orderCommand.setItems(items),
		orderCommand.setPaymentMethod(paymentMethod),
		orderCommand.setShippingAddress(shippingAddress),
		orderCommand.setTotals(totals),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the opaque customer reference.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// StoreID returns the opaque store reference.
func (c CreateOrderCommand) StoreID() string {
	return c.storeID
}

// Items returns the order line items.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// PaymentMethod returns how the customer pays.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// ShippingAddress returns the shipping destination.
func (c CreateOrderCommand) ShippingAddress() order.Address {
	return c.shippingAddress
}

// Totals returns the caller-supplied monetary amounts.
func (c CreateOrderCommand) Totals() order.Totals {
	return c.totals
}

// TrackingNumber returns the optional carrier reference ("" when absent).
func (c CreateOrderCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setStoreID(storeID string) error {
	if storeID == "" {
		return ErrStoreIDIsRequired
	}

	c.storeID = storeID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(shippingAddress order.Address) error {
	if err := shippingAddress.Validate(); err != nil {
		return err
	}

	c.shippingAddress = shippingAddress
	return nil
}

func (c *CreateOrderCommand) setTotals(totals order.Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}

	c.totals = totals
	return nil
}
