package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetDriverOrdersQueryIsNotConstructed = errors.New(
	"GetDriverOrdersQuery must be created via NewGetDriverOrdersQuery constructor",
)

// GetDriverOrdersQuery retrieves the orders assigned to one driver,
// partitioned into the driver view tabs.
type GetDriverOrdersQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverOrdersQuery creates a query scoped to the given driver.
func NewGetDriverOrdersQuery(driverID kernel.UUID) (GetDriverOrdersQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverOrdersQuery{}, err
	}

	return GetDriverOrdersQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverOrdersQueryIsNotConstructed)
}

// DriverID returns the driver whose orders are listed.
func (q GetDriverOrdersQuery) DriverID() kernel.UUID { return q.driverID }

// GetDriverOrdersQueryResponse partitions the driver's orders into tabs:
// active {not delivered, not failed} / completed {delivered} / failed
// {failed}. The partition is exhaustive and non-overlapping.
type GetDriverOrdersQueryResponse struct {
	Active    []OrderView
	Completed []OrderView
	Failed    []OrderView
}
