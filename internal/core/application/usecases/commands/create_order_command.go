package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	// ErrOrderNumberAlreadyExists is returned when a caller-supplied order
	// number collides with an existing order.
	ErrOrderNumberAlreadyExists = errors.New("order number already exists")
)

// CreateOrderCommand represents a request to create a new delivery order on
// behalf of an admin. The order number is optional: when empty, the handler
// generates one and skips the uniqueness check.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	createdBy kernel.UUID
	number    string
	details   order.Details
	priority  order.Priority
	driverID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Required detail fields are validated here so creation fails before any
// remote call. A zero priority falls back to the default.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	createdBy kernel.UUID,
	number string,
	details order.Details,
	priority order.Priority,
	driverID *kernel.UUID,
) (CreateOrderCommand, error) {
	if priority == order.PriorityUnknown {
		priority = order.DefaultPriority
	}

	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCreatedBy(createdBy),
		cmd.setDetails(details),
		cmd.setPriority(priority),
		cmd.setDriverID(driverID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.number = number
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID    { return c.orderID }
func (c CreateOrderCommand) CreatedBy() kernel.UUID  { return c.createdBy }
func (c CreateOrderCommand) Number() string          { return c.number }
func (c CreateOrderCommand) Details() order.Details  { return c.details }
func (c CreateOrderCommand) Priority() order.Priority { return c.priority }
func (c CreateOrderCommand) DriverID() *kernel.UUID  { return c.driverID }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}

	c.createdBy = createdBy
	return nil
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	if details.CustomerName == "" {
		return order.ErrCustomerNameIsRequired
	}
	if details.PickupAddress == "" {
		return order.ErrPickupAddressIsRequired
	}
	if details.DeliveryAddress == "" {
		return order.ErrDeliveryAddressIsRequired
	}

	c.details = details
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateOrderCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}

	c.driverID = driverID
	return nil
}
