package commands

import (
	"context"
)

// AssignOrdersCommandHandler handles bulk driver assignment. The assignment
// has no precondition on the orders' current statuses: every order in the set
// is forced to assigned with its assignment time stamped, even if it was
// delivered. This override power is intentional observed behavior.
type AssignOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignOrdersCommandHandler creates a handler for bulk driver assignment.
func NewAssignOrdersCommandHandler(uowFactory OrderUoWFactory) AssignOrdersCommandHandler {
	return AssignOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bulk assignment command as one batched write.
func (h *AssignOrdersCommandHandler) Handle(ctx context.Context, cmd AssignOrdersCommand) error {
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

	if err := uow.OrderRepository().AssignDriverByIDs(ctx, cmd.OrderIDs(), cmd.DriverID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
