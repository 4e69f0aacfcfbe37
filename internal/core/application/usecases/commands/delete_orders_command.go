package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrDeleteOrdersCommandIsNotConstructed = errors.New(
	"DeleteOrdersCommand must be created via NewDeleteOrdersCommand constructor",
)

// DeleteOrdersCommand represents an admin request to permanently remove a set
// of orders. Deletion is hard; there is no soft-delete or archive state.
type DeleteOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrdersCommand creates a bulk delete command.
func NewDeleteOrdersCommand(orderIDs []kernel.UUID) (DeleteOrdersCommand, error) {
	cmd := DeleteOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderIDs(orderIDs); err != nil {
		return DeleteOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrdersCommandIsNotConstructed)
}

func (c DeleteOrdersCommand) OrderIDs() []kernel.UUID { return c.orderIDs }

func (c *DeleteOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
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
