package commands

import (
	"context"
)

// UpdateOrdersStatusCommandHandler handles bulk status updates. The target
// status is applied identically to every order in the set with no adjacency
// check against the driver transition rules; orders outside the set are
// untouched. No audit records are written for admin bulk updates.
type UpdateOrdersStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrdersStatusCommandHandler creates a handler for bulk status updates.
func NewUpdateOrdersStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrdersStatusCommandHandler {
	return UpdateOrdersStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bulk status update as one batched write.
func (h *UpdateOrdersStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrdersStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().UpdateStatusByIDs(ctx, cmd.OrderIDs(), cmd.Status()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
