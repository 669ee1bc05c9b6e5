package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents one customer purchase. It is the aggregate root that owns
// the order lifecycle from creation through fulfillment to delivery or
// cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid order number
//   - customerID and storeID are opaque non-empty references; their existence
//     is never checked here (that belongs to the customer/store collaborators)
//   - Must have at least one line item; items are immutable after creation
//   - Status only moves forward along Pending -> Processing -> Shipped ->
//     Delivered, or sideways into Cancelled from Pending/Processing
//   - Payment status starts Pending for every payment method; cash-on-delivery
//     orders settle to Paid when delivery is confirmed
//   - Monetary amounts are caller-supplied and never recomputed
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	id              kernel.UUID
	orderNumber     OrderNumber
	customerID      string
	storeID         string
	items           []Item
	status          Status
	paymentStatus   PaymentStatus
	paymentMethod   PaymentMethod
	orderDate       time.Time
	shippingAddress Address
	totals          Totals
	trackingNumber  string
	deliveredAt     *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with payment Pending.
// This is the only way to create a fresh order; every attribute except status,
// payment status and delivery timestamp is caller-supplied.
//
// Parameters:
//   - id: unique identifier for the order
//   - orderNumber: generated human-readable identifier (see services.OrderNumberSequencer)
//   - customerID, storeID: opaque references, required non-empty
//   - items: at least one line item created via NewItem
//   - paymentMethod: how the customer pays; does not influence the initial payment status
//   - shippingAddress: destination created via NewAddress
//   - totals: caller-supplied amounts created via NewTotals
//   - trackingNumber: optional carrier reference, may be empty
//   - orderDate: creation timestamp
//
// Returns the constructed order, or a validation error if any attribute is
// missing or malformed.
func NewOrder(
	id kernel.UUID,
	orderNumber OrderNumber,
	customerID string,
	storeID string,
	items []Item,
	paymentMethod PaymentMethod,
	shippingAddress Address,
	totals Totals,
	trackingNumber string,
	orderDate time.Time,
) (*Order, error) {
	order := &Order{
		status:         Pending,
		paymentStatus:  PaymentPending,
		trackingNumber: trackingNumber,
		isConstructed:  true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomerID(customerID),
		order.setStoreID(storeID),
		order.setItems(items),
		order.setPaymentMethod(paymentMethod),
		order.setShippingAddress(shippingAddress),
		order.setTotals(totals),
		order.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status, payment status and delivery timestamp. Used by repositories only;
// all invariants are re-validated.
func RestoreOrder(
	id kernel.UUID,
	orderNumber OrderNumber,
	customerID string,
	storeID string,
	items []Item,
	status Status,
	paymentStatus PaymentStatus,
	paymentMethod PaymentMethod,
	shippingAddress Address,
	totals Totals,
	trackingNumber string,
	orderDate time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	order := &Order{
		trackingNumber: trackingNumber,
		deliveredAt:    deliveredAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomerID(customerID),
		order.setStoreID(storeID),
		order.setItems(items),
		order.setStatus(status),
		order.setPaymentStatus(paymentStatus),
		order.setPaymentMethod(paymentMethod),
		order.setShippingAddress(shippingAddress),
		order.setTotals(totals),
		order.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order identifier.
func (o *Order) OrderNumber() OrderNumber {
	return o.orderNumber
}

// CustomerID returns the opaque customer reference.
func (o *Order) CustomerID() string {
	return o.customerID
}

// StoreID returns the opaque store reference.
func (o *Order) StoreID() string {
	return o.storeID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment settlement state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentMethod returns how the customer pays for the order.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// OrderDate returns the creation timestamp.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// ShippingAddress returns the shipping destination.
func (o *Order) ShippingAddress() Address {
	return o.shippingAddress
}

// Totals returns the caller-supplied monetary amounts.
func (o *Order) Totals() Totals {
	return o.totals
}

// TrackingNumber returns the optional carrier reference ("" when absent).
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// DeliveredAt returns the delivery timestamp, or nil while undelivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// ChangeStatus moves the order to a forward-flow status.
//
// The transition rules of Status.TransitionTo apply: Cancelled is rejected
// (cancellation goes through Cancel), backward moves are rejected except the
// preserved reset-to-Pending quirk, and no-op reconfirmation is allowed.
//
// Side effect: when the target is Delivered and the order pays cash on
// delivery, the payment settles to Paid and the delivery timestamp is set as
// part of the same change. A card or PayPal order reaching Delivered through
// this path keeps its payment status and delivery timestamp untouched; the
// dedicated ConfirmDelivery path always stamps the delivery time.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Delivered && o.paymentMethod == CashOnDelivery {
		o.paymentStatus = PaymentPaid
		o.deliveredAt = &now
	}
	return nil
}

// ConfirmDelivery marks a Shipped order as Delivered and stamps the delivery
// time. Cash-on-delivery orders additionally settle their payment to Paid.
//
// Returns an InvalidTransitionError ("must be shipped before delivery
// confirmation") when the order is not exactly in Shipped status.
func (o *Order) ConfirmDelivery(now time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &now
	if o.paymentMethod == CashOnDelivery {
		o.paymentStatus = PaymentPaid
	}
	return nil
}

// Cancel moves a Pending or Processing order into the absorbing Cancelled
// state. Payment status and delivery timestamp are left untouched; any
// compensation (refunds, restocking) belongs to external collaborators.
//
// Returns an InvalidTransitionError ("cannot cancel this order") when the
// order has already shipped, been delivered, or been cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer id")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStoreID(storeID string) error {
	if storeID == "" {
		return errs.NewValueIsRequiredError("store id")
	}
	o.storeID = storeID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentStatus(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	o.paymentStatus = paymentStatus
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setShippingAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setTotals(totals Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}
	o.totals = totals
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.orderDate = orderDate
	return nil
}
