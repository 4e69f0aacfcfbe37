package order

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ErrTransitionNotAllowed marks a status change the transition table refuses
// for the acting role. Callers distinguish it from plain validation failures
// when mapping errors outward.
var ErrTransitionNotAllowed = errors.New("status transition is not permitted")

// Actor identifies who initiates a status transition. Super-admins act with
// admin authority, so both map to ActorAdmin.
type Actor int

const (
	ActorUnknown Actor = iota
	ActorAdmin
	ActorDriver
)

// driverTransitions is the authoritative table of driver-initiated
// transitions: sequential progression plus retry, and the manual
// change-status flow out of the two end states. Every driver mutation entry
// point consults this table; the rules are not re-derived per call site.
func driverTransitions() map[Status][]Status {
	return map[Status][]Status{
		Assigned:  {InTransit},
		InTransit: {Delivered},
		Failed:    AllStatuses(),
		Delivered: AllStatuses(),
	}
}

// AllowedTransitions returns the statuses the actor may move an order to
// from the given status. Admins may move any status to any status; that
// override power (e.g. delivered back to assigned) is intentional observed
// behavior and is preserved exactly.
func AllowedTransitions(actor Actor, from Status) []Status {
	if from.Validate() != nil {
		return nil
	}

	switch actor {
	case ActorAdmin:
		return AllStatuses()
	case ActorDriver:
		return driverTransitions()[from]
	default:
		return nil
	}
}

// CanTransition reports whether the actor may move an order from one status
// to another.
func CanTransition(actor Actor, from, to Status) bool {
	if to.Validate() != nil {
		return false
	}
	for _, allowed := range AllowedTransitions(actor, from) {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns a descriptive error when the transition is not
// permitted for the actor.
func ValidateTransition(actor Actor, from, to Status) error {
	if !CanTransition(actor, from, to) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%w: from %s to %s", ErrTransitionNotAllowed, from, to))
	}
	return nil
}
