package orderupdate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

// ErrOrderUpdateIsNotConstructed is returned when an OrderUpdate was not
// created through NewOrderUpdate or RestoreOrderUpdate.
var ErrOrderUpdateIsNotConstructed = errors.New("OrderUpdate must be created via NewOrderUpdate or RestoreOrderUpdate")

// RetryNote is recorded verbatim when a driver retries a failed order.
const RetryNote = "Order retry requested by driver"

// DefaultNote renders the note recorded when the caller supplies none.
// The status appears with spaces instead of underscores, e.g.
// "Order status updated to in transit".
func DefaultNote(status order.Status) string {
	return fmt.Sprintf("Order status updated to %s",
		strings.ReplaceAll(status.String(), "_", " "))
}

// OrderUpdate is an immutable audit record of a driver-initiated status
// transition. Admin overrides and bulk operations do not produce updates;
// only the driver flow writes this trail.
type OrderUpdate struct {
	id        kernel.UUID
	orderID   kernel.UUID
	driverID  kernel.UUID
	status    order.Status
	notes     string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrderUpdate records a driver transition. An empty notes argument falls
// back to the default note for the new status.
func NewOrderUpdate(
	id kernel.UUID,
	orderID kernel.UUID,
	driverID kernel.UUID,
	status order.Status,
	notes string,
) (*OrderUpdate, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		driverID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if notes == "" {
		notes = DefaultNote(status)
	}

	return &OrderUpdate{
		id:        id,
		orderID:   orderID,
		driverID:  driverID,
		status:    status,
		notes:     notes,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrderUpdate reconstructs an audit record from persistence.
func RestoreOrderUpdate(
	id kernel.UUID,
	orderID kernel.UUID,
	driverID kernel.UUID,
	status order.Status,
	notes string,
	createdAt time.Time,
) (*OrderUpdate, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		driverID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &OrderUpdate{
		id:        id,
		orderID:   orderID,
		driverID:  driverID,
		status:    status,
		notes:     notes,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the OrderUpdate was created through a constructor.
func (u *OrderUpdate) Validate() error {
	if u == nil {
		return ErrOrderUpdateIsNotConstructed
	}
	return u.guard.Validate(ErrOrderUpdateIsNotConstructed)
}

func (u *OrderUpdate) ID() kernel.UUID       { return u.id }
func (u *OrderUpdate) OrderID() kernel.UUID  { return u.orderID }
func (u *OrderUpdate) DriverID() kernel.UUID { return u.driverID }
func (u *OrderUpdate) Status() order.Status  { return u.status }
func (u *OrderUpdate) Notes() string         { return u.notes }
func (u *OrderUpdate) CreatedAt() time.Time  { return u.createdAt }
