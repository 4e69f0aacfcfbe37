package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
//
// Driver-facing transitions:
//
//	Pending ──> Assigned ──> InTransit ──> Delivered
//	                ▲                          │
//	                └────────── Failed ◄───────┘ (manual change)
//	                   (retry)
//
// PickedUp is a valid state recognized by filtering and bulk updates but is
// not produced by any driver-facing transition; Failed and Cancelled are
// reachable only through the manual change-status flow or admin overrides.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of an order created without a driver.
	Pending

	// Assigned indicates the order has a driver and awaits pickup.
	Assigned

	// PickedUp indicates the package is with the driver. No driver-facing
	// control produces it; it arrives only via admin updates.
	PickedUp

	// InTransit indicates the driver has started the delivery.
	InTransit

	// Delivered indicates a completed delivery.
	Delivered

	// Failed indicates a delivery attempt that did not succeed.
	Failed

	// Cancelled indicates the order was called off.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Failed:    "failed",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Failed:    "failed",
		Cancelled: "cancelled",
	}
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Assigned, PickedUp, InTransit, Delivered, Failed, Cancelled}
}

// StatusFromString parses the persisted snake_case form of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate reports whether the status is one of the valid lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case form used for persistence and the API.
// Invalid values stringify as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanStart reports whether the start-delivery action applies.
func (s Status) CanStart() bool {
	return s == Assigned
}

// CanDeliver mirrors the original surface, where the deliver affordance
// tracked the assigned status rather than picked_up.
func (s Status) CanDeliver() bool {
	return s == Assigned
}

// CanComplete reports whether the complete-delivery action applies.
func (s Status) CanComplete() bool {
	return s == InTransit
}

// Start transitions Assigned to InTransit.
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%w: %s is not a valid status to start delivery", ErrTransitionNotAllowed, s))
	}
	return InTransit, nil
}

// Complete transitions InTransit to Delivered.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%w: %s is not a valid status to complete delivery", ErrTransitionNotAllowed, s))
	}
	return Delivered, nil
}

// Retry transitions Failed back to Assigned for another attempt.
func (s Status) Retry() (Status, error) {
	if s != Failed {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%w: %s is not a valid status to retry", ErrTransitionNotAllowed, s))
	}
	return Assigned, nil
}

// AdminTab identifies the admin order-list partition a status falls into.
type AdminTab int

const (
	// AdminTabNone marks statuses outside every admin tab. Only Failed maps
	// here; the gap is observed behavior and is kept as-is.
	AdminTabNone AdminTab = iota
	AdminTabPending
	AdminTabActive
	AdminTabCompleted
)

// AdminTab partitions statuses for the admin view: pending / active
// {assigned, picked_up, in_transit} / completed {delivered, cancelled}.
// Failed maps to AdminTabNone.
func (s Status) AdminTab() AdminTab {
	switch s {
	case Pending:
		return AdminTabPending
	case Assigned, PickedUp, InTransit:
		return AdminTabActive
	case Delivered, Cancelled:
		return AdminTabCompleted
	default:
		return AdminTabNone
	}
}

// DriverTab identifies the driver order-list partition a status falls into.
type DriverTab int

const (
	DriverTabActive DriverTab = iota
	DriverTabCompleted
	DriverTabFailed
)

// DriverTab partitions statuses for the driver view: delivered is completed,
// failed is failed, everything else is active. The partition is exhaustive
// and non-overlapping over all statuses.
func (s Status) DriverTab() DriverTab {
	switch s {
	case Delivered:
		return DriverTabCompleted
	case Failed:
		return DriverTabFailed
	default:
		return DriverTabActive
	}
}
