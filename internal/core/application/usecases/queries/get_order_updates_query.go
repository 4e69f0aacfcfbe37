package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrderUpdatesQueryIsNotConstructed = errors.New(
	"GetOrderUpdatesQuery must be created via NewGetOrderUpdatesQuery constructor",
)

// GetOrderUpdatesQuery retrieves the audit trail of one order.
type GetOrderUpdatesQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderUpdatesQuery creates an audit trail query for the given order.
func NewGetOrderUpdatesQuery(orderID kernel.UUID) (GetOrderUpdatesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderUpdatesQuery{}, err
	}

	return GetOrderUpdatesQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderUpdatesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderUpdatesQueryIsNotConstructed)
}

// OrderID returns the order whose audit trail is listed.
func (q GetOrderUpdatesQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderUpdatesQueryResponse is one audit record in the read model.
type GetOrderUpdatesQueryResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	DriverID  kernel.UUID
	Status    order.Status
	Notes     string
	CreatedAt time.Time
}
