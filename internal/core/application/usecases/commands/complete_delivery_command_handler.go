package commands

import (
	"context"
)

// CompleteDeliveryCommandHandler moves an in-transit order to delivered and
// appends the audit record in the same transaction.
type CompleteDeliveryCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for completing deliveries.
func NewCompleteDeliveryCommandHandler(uowFactory DriverUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complete-delivery command.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	if err = aggregate.CompleteDelivery(); err != nil {
		return err
	}

	if err = persistDriverTransition(ctx, uow, aggregate, cmd.DriverID(), cmd.Notes()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
