package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the admin dashboard counters, scoped to
// the orders the admin created and the drivers reporting to them.
type GetDashboardStatsQuery struct {
	adminID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a dashboard stats query for the admin.
func NewGetDashboardStatsQuery(adminID kernel.UUID) (GetDashboardStatsQuery, error) {
	if err := adminID.Validate(); err != nil {
		return GetDashboardStatsQuery{}, err
	}

	return GetDashboardStatsQuery{
		adminID: adminID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// AdminID returns the admin the counters are scoped to.
func (q GetDashboardStatsQuery) AdminID() kernel.UUID { return q.adminID }

// GetDashboardStatsQueryResponse holds the admin dashboard counters. Active
// counts pending, assigned, and in-transit orders; completed counts
// delivered ones.
type GetDashboardStatsQueryResponse struct {
	DriverCount     int
	TotalOrders     int
	ActiveOrders    int
	CompletedOrders int
}
