package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetSystemStatsQueryHandler computes system-wide counters for the
// super-admin dashboard.
type GetSystemStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetSystemStatsQueryHandler creates a handler for system stats.
func NewGetSystemStatsQueryHandler(db *gorm.DB) GetSystemStatsQueryHandler {
	return GetSystemStatsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetSystemStatsQueryHandler) Handle(
	ctx context.Context,
	query GetSystemStatsQuery,
) (GetSystemStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSystemStatsQueryResponse{}, err
	}

	response := GetSystemStatsQueryResponse{
		UsersByRole:    make(map[string]int),
		OrdersByStatus: make(map[string]int),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT role, COUNT(*)
		FROM user_profiles
		GROUP BY role
	`).Rows()
	if err != nil {
		return GetSystemStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			role  string
			count int
		)
		if err = rows.Scan(&role, &count); err != nil {
			return GetSystemStatsQueryResponse{}, err
		}
		response.UsersByRole[role] = count
	}
	if err = rows.Err(); err != nil {
		return GetSystemStatsQueryResponse{}, err
	}

	statusRows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetSystemStatsQueryResponse{}, err
	}
	defer statusRows.Close()

	for statusRows.Next() {
		var (
			status string
			count  int
		)
		if err = statusRows.Scan(&status, &count); err != nil {
			return GetSystemStatsQueryResponse{}, err
		}
		response.OrdersByStatus[status] = count
	}
	if err = statusRows.Err(); err != nil {
		return GetSystemStatsQueryResponse{}, err
	}

	return response, nil
}
