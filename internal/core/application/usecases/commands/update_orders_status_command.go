package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateOrdersStatusCommandIsNotConstructed = errors.New(
	"UpdateOrdersStatusCommand must be created via NewUpdateOrdersStatusCommand constructor",
)

// UpdateOrdersStatusCommand represents an admin request to set one status on
// a set of orders unconditionally.
type UpdateOrdersStatusCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	status   order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrdersStatusCommand creates a bulk status update command.
func NewUpdateOrdersStatusCommand(orderIDs []kernel.UUID, status order.Status) (UpdateOrdersStatusCommand, error) {
	cmd := UpdateOrdersStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrdersStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrdersStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrdersStatusCommandIsNotConstructed)
}

func (c UpdateOrdersStatusCommand) OrderIDs() []kernel.UUID { return c.orderIDs }
func (c UpdateOrdersStatusCommand) Status() order.Status    { return c.status }

func (c *UpdateOrdersStatusCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("order ids")
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}

func (c *UpdateOrdersStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
