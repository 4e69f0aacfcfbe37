package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Priority represents the urgency of a delivery order.
type Priority int

const (
	PriorityUnknown Priority = iota
	Low
	Normal
	High
	Urgent
)

// DefaultPriority is applied when the caller does not choose one.
const DefaultPriority = Normal

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		Low:    "low",
		Normal: "normal",
		High:   "high",
		Urgent: "urgent",
	}
}

// PriorityFromString parses the persisted form of a priority.
func PriorityFromString(s string) (Priority, error) {
	for priority, str := range getPriorityStrings() {
		if str == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority", fmt.Errorf("%q is not a valid priority", s))
}

// Validate reports whether the priority is one of the four valid levels.
func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the persisted lowercase form. Invalid values stringify as
// "unknown".
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}
