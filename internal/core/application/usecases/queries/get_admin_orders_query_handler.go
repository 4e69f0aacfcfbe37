package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAdminOrdersQueryHandler retrieves an admin's orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAdminOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAdminOrdersQueryHandler creates a handler for admin order listings.
func NewGetAdminOrdersQueryHandler(db *gorm.DB) GetAdminOrdersQueryHandler {
	return GetAdminOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned newest first and partitioned
// by the admin tab mapping.
func (h GetAdminOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAdminOrdersQuery,
) (GetAdminOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAdminOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE created_by = ?
		ORDER BY created_at DESC
	`, query.CreatedBy().String()).Rows()
	if err != nil {
		return GetAdminOrdersQueryResponse{}, err
	}
	defer rows.Close()

	response := GetAdminOrdersQueryResponse{
		All:       make([]OrderView, 0),
		Pending:   make([]OrderView, 0),
		Active:    make([]OrderView, 0),
		Completed: make([]OrderView, 0),
	}

	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return GetAdminOrdersQueryResponse{}, scanErr
		}

		response.All = append(response.All, view)

		switch view.Status.AdminTab() {
		case order.AdminTabPending:
			response.Pending = append(response.Pending, view)
		case order.AdminTabActive:
			response.Active = append(response.Active, view)
		case order.AdminTabCompleted:
			response.Completed = append(response.Completed, view)
		case order.AdminTabNone:
			// failed orders stay out of every tab
		}
	}

	if err = rows.Err(); err != nil {
		return GetAdminOrdersQueryResponse{}, err
	}

	return response, nil
}
