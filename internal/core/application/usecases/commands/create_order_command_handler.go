package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Draws a fresh order number from the per-day counter and creates the order
// in "pending" status with "pending" payment, all in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand("cust-1", "store-1", items,
//	    order.CreditCard, address, totals, "")
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("Order %s placed", created.OrderNumber())
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a CreateOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command and returns the fully
// populated persisted order, including its generated order number.
// The counter increment and the order insert share one transaction, so a
// rolled back creation never burns a sequence number.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()

	sequencer, err := services.NewOrderNumberSequencer(uow.OrderCounterRepository())
	if err != nil {
		return nil, err
	}

	orderNumber, err := sequencer.Next(ctx, now)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		orderNumber,
		cmd.CustomerID(),
		cmd.StoreID(),
		cmd.Items(),
		cmd.PaymentMethod(),
		cmd.ShippingAddress(),
		cmd.Totals(),
		cmd.TrackingNumber(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
