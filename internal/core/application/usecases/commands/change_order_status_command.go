package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a driver's manual status change,
// available only from the delivered and failed end states.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID
	status   order.Status
	notes    string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a manual status change command.
func NewChangeOrderStatusCommand(
	orderID, driverID kernel.UUID,
	status order.Status,
	notes string,
) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		driverID.Validate(),
		status.Validate(),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID:  orderID,
		driverID: driverID,
		status:   status,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID  { return c.orderID }
func (c ChangeOrderStatusCommand) DriverID() kernel.UUID { return c.driverID }
func (c ChangeOrderStatusCommand) Status() order.Status  { return c.status }
func (c ChangeOrderStatusCommand) Notes() string         { return c.notes }
