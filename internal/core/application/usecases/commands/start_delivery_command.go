package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand represents a driver's request to start delivering an
// assigned order.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID
	notes    string

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a start-delivery command. Notes are
// optional; an empty value gets the default audit note.
func NewStartDeliveryCommand(orderID, driverID kernel.UUID, notes string) (StartDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), driverID.Validate()); err != nil {
		return StartDeliveryCommand{}, err
	}

	return StartDeliveryCommand{
		orderID:  orderID,
		driverID: driverID,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

func (c StartDeliveryCommand) OrderID() kernel.UUID  { return c.orderID }
func (c StartDeliveryCommand) DriverID() kernel.UUID { return c.driverID }
func (c StartDeliveryCommand) Notes() string         { return c.notes }
