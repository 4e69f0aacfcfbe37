package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRetryOrderCommandIsNotConstructed = errors.New(
	"RetryOrderCommand must be created via NewRetryOrderCommand constructor",
)

// RetryOrderCommand represents a driver's request to retry a failed order.
// The audit note is fixed; callers cannot override it.
type RetryOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRetryOrderCommand creates a retry command.
func NewRetryOrderCommand(orderID, driverID kernel.UUID) (RetryOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), driverID.Validate()); err != nil {
		return RetryOrderCommand{}, err
	}

	return RetryOrderCommand{
		orderID:  orderID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RetryOrderCommand) Validate() error {
	return c.guard.Validate(ErrRetryOrderCommandIsNotConstructed)
}

func (c RetryOrderCommand) OrderID() kernel.UUID  { return c.orderID }
func (c RetryOrderCommand) DriverID() kernel.UUID { return c.driverID }
