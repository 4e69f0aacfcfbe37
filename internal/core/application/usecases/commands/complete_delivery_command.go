package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a driver's request to complete an
// in-transit order. Proof-of-delivery capture happens before this command is
// issued; the notes carry whatever the capture step reported.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID
	notes    string

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a complete-delivery command.
func NewCompleteDeliveryCommand(orderID, driverID kernel.UUID, notes string) (CompleteDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), driverID.Validate()); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return CompleteDeliveryCommand{
		orderID:  orderID,
		driverID: driverID,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) OrderID() kernel.UUID  { return c.orderID }
func (c CompleteDeliveryCommand) DriverID() kernel.UUID { return c.driverID }
func (c CompleteDeliveryCommand) Notes() string         { return c.notes }
