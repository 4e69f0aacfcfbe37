package commands

import (
	"context"
)

// DeleteOrdersCommandHandler handles bulk order deletion.
type DeleteOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrdersCommandHandler creates a handler for bulk order deletion.
func NewDeleteOrdersCommandHandler(uowFactory OrderUoWFactory) DeleteOrdersCommandHandler {
	return DeleteOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bulk deletion as one batched write.
func (h *DeleteOrdersCommandHandler) Handle(ctx context.Context, cmd DeleteOrdersCommand) error {
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

	if err := uow.OrderRepository().DeleteByIDs(ctx, cmd.OrderIDs()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
