package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels an order that is still "pending" or
// "processing". Payment status and delivery timestamp are left untouched;
// compensation across related entities (refunds, restocking) is explicitly
// out of scope and belongs to external collaborators.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation and returns the cancelled order.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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
	if err = existingOrder.Cancel(); err != nil {
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
