package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrGetDriverRouteQueryIsNotConstructed = errors.New(
	"GetDriverRouteQuery must be created via NewGetDriverRouteQuery constructor",
)

// GetDriverRouteQuery plans the stop list for one driver's active orders.
type GetDriverRouteQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverRouteQuery creates a route query for the given driver.
func NewGetDriverRouteQuery(driverID kernel.UUID) (GetDriverRouteQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverRouteQuery{}, err
	}

	return GetDriverRouteQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverRouteQueryIsNotConstructed)
}

// DriverID returns the driver whose route is planned.
func (q GetDriverRouteQuery) DriverID() kernel.UUID { return q.driverID }

// StopView is one planned stop in the route read model.
type StopView struct {
	OrderID          kernel.UUID
	OrderNumber      string
	Kind             string
	Address          string
	Priority         order.Priority
	EstimatedMinutes float64
	EstimatedMiles   float64
}

// GetDriverRouteQueryResponse is the planned route with summed estimates.
type GetDriverRouteQueryResponse struct {
	Stops        []StopView
	TotalMinutes float64
	TotalMiles   float64
}
