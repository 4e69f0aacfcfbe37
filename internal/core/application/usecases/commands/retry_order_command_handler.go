package commands

import (
	"context"

	"dispatch/internal/core/domain/model/orderupdate"
)

// RetryOrderCommandHandler moves a failed order back to assigned and records
// the fixed retry note in the audit trail.
type RetryOrderCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRetryOrderCommandHandler creates a handler for retrying failed orders.
func NewRetryOrderCommandHandler(uowFactory DriverUoWFactory) RetryOrderCommandHandler {
	return RetryOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the retry command.
func (h *RetryOrderCommandHandler) Handle(ctx context.Context, cmd RetryOrderCommand) error {
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

	if err = aggregate.Retry(); err != nil {
		return err
	}

	if err = persistDriverTransition(ctx, uow, aggregate, cmd.DriverID(), orderupdate.RetryNote); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
