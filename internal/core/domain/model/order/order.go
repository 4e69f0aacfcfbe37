package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for order construction and mutation.
var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	// ErrCustomerNameIsRequired is returned when creating an order without a customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	// ErrPickupAddressIsRequired is returned when creating an order without a pickup address.
	ErrPickupAddressIsRequired = errs.NewValueIsRequiredError("pickup address")
	// ErrDeliveryAddressIsRequired is returned when creating an order without a delivery address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
)

// Details holds the descriptive, state-machine-irrelevant fields of an order.
// CustomerName, PickupAddress, and DeliveryAddress are required at creation;
// the rest are optional.
type Details struct {
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	PickupAddress   string
	DeliveryAddress string
	DeliveryNotes   string
}

func (d Details) validate() error {
	var err error
	if d.CustomerName == "" {
		err = errors.Join(err, ErrCustomerNameIsRequired)
	}
	if d.PickupAddress == "" {
		err = errors.Join(err, ErrPickupAddressIsRequired)
	}
	if d.DeliveryAddress == "" {
		err = errors.Join(err, ErrDeliveryAddressIsRequired)
	}
	return err
}

// Order is the aggregate root of the delivery lifecycle. It owns the status
// state machine: driver progression goes through StartDelivery,
// CompleteDelivery, Retry, and ChangeStatus, all gated by the transition
// table; admin overrides go through Assign and SetStatus, which carry no
// precondition by design of the observed system.
//
// Invariants:
//   - id and createdBy are valid UUIDs, both immutable after creation
//   - number is non-empty (uniqueness is enforced by the creating use case)
//   - status and priority are valid enum values
//   - assignedAt is set whenever a driver assignment happens
//   - every mutation stamps updatedAt
type Order struct {
	id        kernel.UUID
	number    Number
	status    Status
	priority  Priority
	driverID  *kernel.UUID
	createdBy kernel.UUID
	details   Details
	createdAt time.Time
	updatedAt time.Time
	assignedAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order on behalf of an admin. The initial status is
// Assigned when a driver is supplied (stamping assignedAt) and Pending
// otherwise. Required detail fields are validated; validation failures
// return before any state is built, so creation fails closed.
func NewOrder(
	id kernel.UUID,
	number Number,
	createdBy kernel.UUID,
	details Details,
	priority Priority,
	driverID *kernel.UUID,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		number.Validate(),
		createdBy.Validate(),
		details.validate(),
		priority.Validate(),
	); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	o := &Order{
		id:        id,
		number:    number,
		status:    Pending,
		priority:  priority,
		createdBy: createdBy,
		details:   details,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if driverID != nil {
		o.driverID = driverID
		o.status = Assigned
		o.assignedAt = &now
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// creation-time rules. Status and priority are still validated so corrupt
// rows surface at load time.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	status Status,
	priority Priority,
	driverID *kernel.UUID,
	createdBy kernel.UUID,
	details Details,
	createdAt, updatedAt time.Time,
	assignedAt *time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		number.Validate(),
		status.Validate(),
		priority.Validate(),
		createdBy.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:         id,
		number:     number,
		status:     status,
		priority:   priority,
		driverID:   driverID,
		createdBy:  createdBy,
		details:    details,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		assignedAt: assignedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID          { return o.id }
func (o *Order) Number() Number           { return o.number }
func (o *Order) Status() Status           { return o.status }
func (o *Order) Priority() Priority       { return o.priority }
func (o *Order) Driver() *kernel.UUID     { return o.driverID }
func (o *Order) CreatedBy() kernel.UUID   { return o.createdBy }
func (o *Order) Details() Details         { return o.details }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }
func (o *Order) UpdatedAt() time.Time     { return o.updatedAt }
func (o *Order) AssignedAt() *time.Time   { return o.assignedAt }

// CanStart reports whether the driver may start this delivery.
// Capability flags are derived from the current status on every call and
// must never be cached across mutations.
func (o *Order) CanStart() bool { return o.status.CanStart() }

// CanDeliver mirrors the original affordance (tracks Assigned).
func (o *Order) CanDeliver() bool { return o.status.CanDeliver() }

// CanComplete reports whether the driver may complete this delivery.
func (o *Order) CanComplete() bool { return o.status.CanComplete() }

// Assign sets the driver and forces the status to Assigned, stamping
// assignedAt and updatedAt. There is no precondition: reassignment can pull
// a delivered order back to assigned, matching the observed admin override.
func (o *Order) Assign(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	o.driverID = &driverID
	o.status = Assigned
	o.assignedAt = &now
	o.updatedAt = now
	return nil
}

// SetStatus applies an admin status override. Any valid status may replace
// any other; only updatedAt is stamped.
func (o *Order) SetStatus(to Status) error {
	if err := ValidateTransition(ActorAdmin, o.status, to); err != nil {
		return err
	}

	o.status = to
	o.updatedAt = time.Now().UTC()
	return nil
}

// StartDelivery moves Assigned to InTransit.
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// CompleteDelivery moves InTransit to Delivered. Proof-of-delivery capture
// happens in an external collaborator before this is called.
func (o *Order) CompleteDelivery() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// Retry moves Failed back to Assigned for another attempt.
func (o *Order) Retry() error {
	newStatus, err := o.status.Retry()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// ChangeStatus applies the driver's manual change-status flow, available
// from the Delivered and Failed end states, gated by the transition table.
func (o *Order) ChangeStatus(to Status) error {
	if o.status != Delivered && o.status != Failed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%w: manual change is only available for delivered or failed orders", ErrTransitionNotAllowed))
	}
	if err := ValidateTransition(ActorDriver, o.status, to); err != nil {
		return err
	}

	o.status = to
	o.updatedAt = time.Now().UTC()
	return nil
}
