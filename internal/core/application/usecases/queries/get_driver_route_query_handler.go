package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetDriverRouteQueryHandler loads a driver's routable orders and runs the
// route planner over them. Rows are fed to the planner in creation order so
// the simulated estimates are stable across reads.
type GetDriverRouteQueryHandler struct {
	db      *gorm.DB
	planner services.RoutePlanner
}

// NewGetDriverRouteQueryHandler creates a handler for driver route queries.
func NewGetDriverRouteQueryHandler(db *gorm.DB, planner services.RoutePlanner) GetDriverRouteQueryHandler {
	return GetDriverRouteQueryHandler{db: db, planner: planner}
}

// Handle executes the query and returns the planned route.
func (h GetDriverRouteQueryHandler) Handle(
	ctx context.Context,
	query GetDriverRouteQuery,
) (GetDriverRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverRouteQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE driver_id = ? AND status IN ('assigned', 'picked_up')
		ORDER BY created_at
	`, query.DriverID().String()).Rows()
	if err != nil {
		return GetDriverRouteQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return GetDriverRouteQueryResponse{}, scanErr
		}

		aggregate, restoreErr := order.RestoreOrder(
			view.ID,
			order.Number(view.Number),
			view.Status,
			view.Priority,
			view.DriverID,
			view.CreatedBy,
			order.Details{
				CustomerName:    view.CustomerName,
				CustomerPhone:   view.CustomerPhone,
				CustomerEmail:   view.CustomerEmail,
				PickupAddress:   view.PickupAddress,
				DeliveryAddress: view.DeliveryAddress,
				DeliveryNotes:   view.DeliveryNotes,
			},
			view.CreatedAt,
			view.UpdatedAt,
			view.AssignedAt,
		)
		if restoreErr != nil {
			return GetDriverRouteQueryResponse{}, restoreErr
		}

		orders = append(orders, aggregate)
	}

	if err = rows.Err(); err != nil {
		return GetDriverRouteQueryResponse{}, err
	}

	route, err := h.planner.Plan(orders)
	if err != nil {
		return GetDriverRouteQueryResponse{}, err
	}

	response := GetDriverRouteQueryResponse{
		Stops:        make([]StopView, 0, len(route.Stops)),
		TotalMinutes: route.TotalMinutes,
		TotalMiles:   route.TotalMiles,
	}
	for _, stop := range route.Stops {
		response.Stops = append(response.Stops, StopView{
			OrderID:          stop.Order.ID(),
			OrderNumber:      stop.Order.Number().String(),
			Kind:             stop.Kind.String(),
			Address:          stop.Address,
			Priority:         stop.Order.Priority(),
			EstimatedMinutes: stop.EstimatedMinutes,
			EstimatedMiles:   stop.EstimatedMiles,
		})
	}

	return response, nil
}
