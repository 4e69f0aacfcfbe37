// Package ports defines repository and unit-of-work interfaces for the
// delivery domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Single-aggregate methods load and store full aggregates; the ByIDs methods
// implement the bulk operations as one batched write keyed by an id set,
// with no precondition on the orders' current statuses.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ExistsNumber reports whether an order with the given number exists.
	// Used for the uniqueness check on caller-supplied numbers.
	ExistsNumber(ctx context.Context, number order.Number) (bool, error)

	// GetAllByCreator retrieves every order created by the given admin,
	// newest first.
	GetAllByCreator(ctx context.Context, createdBy kernel.UUID) ([]*order.Order, error)

	// GetAllByDriver retrieves every order assigned to the given driver,
	// newest first.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error)

	// UpdateStatusByIDs sets the status on every order in the id set in one
	// batched write. Orders outside the set are untouched.
	UpdateStatusByIDs(ctx context.Context, ids []kernel.UUID, status order.Status) error

	// AssignDriverByIDs sets the driver and forces status to assigned on
	// every order in the id set, stamping assignment time.
	AssignDriverByIDs(ctx context.Context, ids []kernel.UUID, driverID kernel.UUID) error

	// DeleteByIDs permanently removes every order in the id set.
	DeleteByIDs(ctx context.Context, ids []kernel.UUID) error
}
