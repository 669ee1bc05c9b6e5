package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler moves an order along the forward flow.
// Loads the order, lets the aggregate validate the transition, and writes
// the result back conditionally on the status observed at read time, so a
// concurrent transition surfaces as ports.ErrStaleOrder instead of a silent
// lost update.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update and returns the updated order, including
// the cash-on-delivery settlement side effect when the target is "delivered".
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
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
	if err = existingOrder.ChangeStatus(cmd.NewStatus(), time.Now().UTC()); err != nil {
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
