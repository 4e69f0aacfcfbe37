package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/orderupdate"
)

// OrderUpdateRepository defines the append-only persistence contract for the
// audit trail. Records are inserted and listed, never updated or deleted.
type OrderUpdateRepository interface {
	// Add appends an audit record.
	Add(ctx context.Context, update *orderupdate.OrderUpdate) error

	// GetAllByOrder retrieves the audit trail for one order, newest first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*orderupdate.OrderUpdate, error)
}
