// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"database/sql"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderView is the read model for one order row. Capability flags are
// recomputed from the status on every read and never persisted.
type OrderView struct {
	ID              kernel.UUID
	Number          string
	Status          order.Status
	Priority        order.Priority
	DriverID        *kernel.UUID
	CreatedBy       kernel.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	PickupAddress   string
	DeliveryAddress string
	DeliveryNotes   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	AssignedAt      *time.Time

	CanStart    bool
	CanDeliver  bool
	CanComplete bool
}

// orderViewColumns is the select list every order read query shares; the
// scan in scanOrderView matches it positionally.
const orderViewColumns = `
	id,
	number,
	status,
	priority,
	driver_id,
	created_by,
	customer_name,
	customer_phone,
	customer_email,
	pickup_address,
	delivery_address,
	delivery_notes,
	created_at,
	updated_at,
	assigned_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderView(rows rowScanner) (OrderView, error) {
	var (
		view        OrderView
		id          uuid.UUID
		driverID    uuid.NullUUID
		createdBy   uuid.UUID
		statusStr   string
		priorityStr string
		assignedAt  sql.NullTime
	)

	if err := rows.Scan(
		&id,
		&view.Number,
		&statusStr,
		&priorityStr,
		&driverID,
		&createdBy,
		&view.CustomerName,
		&view.CustomerPhone,
		&view.CustomerEmail,
		&view.PickupAddress,
		&view.DeliveryAddress,
		&view.DeliveryNotes,
		&view.CreatedAt,
		&view.UpdatedAt,
		&assignedAt,
	); err != nil {
		return OrderView{}, err
	}

	viewID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderView{}, err
	}
	view.ID = viewID

	creator, err := kernel.UUIDFromBytes(createdBy[:])
	if err != nil {
		return OrderView{}, err
	}
	view.CreatedBy = creator

	if driverID.Valid {
		driver, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if idErr != nil {
			return OrderView{}, idErr
		}
		view.DriverID = &driver
	}

	status, err := order.StatusFromString(statusStr)
	if err != nil {
		return OrderView{}, err
	}
	view.Status = status

	priority, err := order.PriorityFromString(priorityStr)
	if err != nil {
		return OrderView{}, err
	}
	view.Priority = priority

	if assignedAt.Valid {
		t := assignedAt.Time
		view.AssignedAt = &t
	}

	view.CanStart = status.CanStart()
	view.CanDeliver = status.CanDeliver()
	view.CanComplete = status.CanComplete()

	return view, nil
}
