package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDriverOrdersQueryHandler retrieves a driver's orders from the database.
// Capability flags on each row are derived from the current status so the
// client never acts on stale affordances.
type GetDriverOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverOrdersQueryHandler creates a handler for driver order listings.
func NewGetDriverOrdersQueryHandler(db *gorm.DB) GetDriverOrdersQueryHandler {
	return GetDriverOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned newest first and partitioned
// by the driver tab mapping.
func (h GetDriverOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDriverOrdersQuery,
) (GetDriverOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE driver_id = ?
		ORDER BY created_at DESC
	`, query.DriverID().String()).Rows()
	if err != nil {
		return GetDriverOrdersQueryResponse{}, err
	}
	defer rows.Close()

	response := GetDriverOrdersQueryResponse{
		Active:    make([]OrderView, 0),
		Completed: make([]OrderView, 0),
		Failed:    make([]OrderView, 0),
	}

	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return GetDriverOrdersQueryResponse{}, scanErr
		}

		switch view.Status.DriverTab() {
		case order.DriverTabCompleted:
			response.Completed = append(response.Completed, view)
		case order.DriverTabFailed:
			response.Failed = append(response.Failed, view)
		default:
			response.Active = append(response.Active, view)
		}
	}

	if err = rows.Err(); err != nil {
		return GetDriverOrdersQueryResponse{}, err
	}

	return response, nil
}
