package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAssignOrdersCommandIsNotConstructed = errors.New(
	"AssignOrdersCommand must be created via NewAssignOrdersCommand constructor",
)

// AssignOrdersCommand represents an admin request to assign a driver to a set
// of orders in one batched write. A single-order assignment is the one-element
// case of the same command.
type AssignOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrdersCommand creates a bulk driver assignment command.
// The id set must be non-empty and every id valid.
func NewAssignOrdersCommand(orderIDs []kernel.UUID, driverID kernel.UUID) (AssignOrdersCommand, error) {
	cmd := AssignOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrdersCommandIsNotConstructed)
}

func (c AssignOrdersCommand) OrderIDs() []kernel.UUID { return c.orderIDs }
func (c AssignOrdersCommand) DriverID() kernel.UUID   { return c.driverID }

func (c *AssignOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
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

func (c *AssignOrdersCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
