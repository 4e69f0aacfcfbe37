package commands

import (
	"context"
)

// StartDeliveryCommandHandler moves an assigned order to in transit and
// appends the audit record in the same transaction.
type StartDeliveryCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewStartDeliveryCommandHandler creates a handler for starting deliveries.
func NewStartDeliveryCommandHandler(uowFactory DriverUoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start-delivery command.
func (h *StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
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

	if err = aggregate.StartDelivery(); err != nil {
		return err
	}

	if err = persistDriverTransition(ctx, uow, aggregate, cmd.DriverID(), cmd.Notes()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
