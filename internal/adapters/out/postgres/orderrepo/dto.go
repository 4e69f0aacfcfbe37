// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and priority are stored in their snake_case string forms so the raw
// read queries and the CSV export can use them without decoding.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number          string     `gorm:"uniqueIndex;not null"`
	Status          string     `gorm:"index;not null"`
	Priority        string     `gorm:"not null"`
	DriverID        *uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy       uuid.UUID  `gorm:"type:uuid;index;not null"`
	CustomerName    string     `gorm:"not null"`
	CustomerPhone   string
	CustomerEmail   string
	PickupAddress   string `gorm:"not null"`
	DeliveryAddress string `gorm:"not null"`
	DeliveryNotes   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	AssignedAt      *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	details := aggregate.Details()
	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Number:          aggregate.Number().String(),
		Status:          aggregate.Status().String(),
		Priority:        aggregate.Priority().String(),
		DriverID:        driverID,
		CreatedBy:       aggregate.CreatedBy().Bytes(),
		CustomerName:    details.CustomerName,
		CustomerPhone:   details.CustomerPhone,
		CustomerEmail:   details.CustomerEmail,
		PickupAddress:   details.PickupAddress,
		DeliveryAddress: details.DeliveryAddress,
		DeliveryNotes:   details.DeliveryNotes,
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		AssignedAt:      aggregate.AssignedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	priority, err := order.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		order.Number(dto.Number),
		status,
		priority,
		driverID,
		createdBy,
		order.Details{
			CustomerName:    dto.CustomerName,
			CustomerPhone:   dto.CustomerPhone,
			CustomerEmail:   dto.CustomerEmail,
			PickupAddress:   dto.PickupAddress,
			DeliveryAddress: dto.DeliveryAddress,
			DeliveryNotes:   dto.DeliveryNotes,
		},
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.AssignedAt,
	)
}
