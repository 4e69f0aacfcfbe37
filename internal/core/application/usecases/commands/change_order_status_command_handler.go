package commands

import (
	"context"
)

// ChangeOrderStatusCommandHandler applies a driver's manual status change,
// gated by the transition table, and appends the audit record in the same
// transaction.
type ChangeOrderStatusCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for manual status changes.
func NewChangeOrderStatusCommandHandler(uowFactory DriverUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manual status change command.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	aggregate, err := getDriverOrder(ctx, uow, cmd.OrderID(), cmd.DriverID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = persistDriverTransition(ctx, uow, aggregate, cmd.DriverID(), cmd.Notes()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
