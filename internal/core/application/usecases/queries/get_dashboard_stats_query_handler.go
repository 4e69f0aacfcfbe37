package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler computes the admin dashboard counters with
// aggregate SQL instead of loading rows.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard stats.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	var response GetDashboardStatsQueryResponse
	adminID := query.AdminID().String()

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status IN ('pending', 'assigned', 'in_transit')),
			COUNT(*) FILTER (WHERE status = 'delivered')
		FROM orders
		WHERE created_by = ?
	`, adminID).Row()
	if err := row.Scan(
		&response.TotalOrders,
		&response.ActiveOrders,
		&response.CompletedOrders,
	); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM user_profiles
		WHERE role = 'driver' AND admin_id = ?
	`, adminID).Row()
	if err := row.Scan(&response.DriverCount); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return response, nil
}
