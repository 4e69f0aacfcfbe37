// Package updaterepo persists the append-only audit trail of driver-initiated
// order status transitions.
package updaterepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/orderupdate"

	"github.com/google/uuid"
)

// OrderUpdateDTO represents the database structure for audit records.
type OrderUpdateDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	DriverID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Status    string    `gorm:"not null"`
	Notes     string
	CreatedAt time.Time
}

// TableName specifies the database table name for audit records.
func (OrderUpdateDTO) TableName() string {
	return "order_updates"
}

func fromDomain(update *orderupdate.OrderUpdate) OrderUpdateDTO {
	return OrderUpdateDTO{
		ID:        update.ID().Bytes(),
		OrderID:   update.OrderID().Bytes(),
		DriverID:  update.DriverID().Bytes(),
		Status:    update.Status().String(),
		Notes:     update.Notes(),
		CreatedAt: update.CreatedAt(),
	}
}

func toDomain(dto OrderUpdateDTO) (*orderupdate.OrderUpdate, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return orderupdate.RestoreOrderUpdate(id, orderID, driverID, status, dto.Notes, dto.CreatedAt)
}
