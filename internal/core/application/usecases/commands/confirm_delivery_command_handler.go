package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// ConfirmDeliveryCommandHandler confirms delivery of a shipped order.
// Sets status to "delivered" and stamps the delivery time; cash-on-delivery
// orders additionally settle their payment to "paid". Orders not in "shipped"
// status are rejected with "must be shipped before delivery confirmation".
type ConfirmDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory OrderUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation and returns the updated order.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	existingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	observedStatus := existingOrder.Status()
	if err = existingOrder.ConfirmDelivery(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, existingOrder, observedStatus); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existingOrder, nil
}
