package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderUpdatesQueryHandler retrieves the audit trail for one order,
// newest first.
type GetOrderUpdatesQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderUpdatesQueryHandler creates a handler for audit trail queries.
func NewGetOrderUpdatesQueryHandler(db *gorm.DB) GetOrderUpdatesQueryHandler {
	return GetOrderUpdatesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderUpdatesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderUpdatesQuery,
) ([]GetOrderUpdatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			driver_id,
			status,
			notes,
			created_at
		FROM order_updates
		WHERE order_id = ?
		ORDER BY created_at DESC
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	updates := make([]GetOrderUpdatesQueryResponse, 0)

	for rows.Next() {
		var (
			response  GetOrderUpdatesQueryResponse
			id        uuid.UUID
			orderID   uuid.UUID
			driverID  uuid.UUID
			statusStr string
		)

		if err = rows.Scan(
			&id,
			&orderID,
			&driverID,
			&statusStr,
			&response.Notes,
			&response.CreatedAt,
		); err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if response.DriverID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
			return nil, err
		}
		if response.Status, err = order.StatusFromString(statusStr); err != nil {
			return nil, err
		}

		updates = append(updates, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return updates, nil
}
