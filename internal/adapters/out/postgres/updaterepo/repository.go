package updaterepo

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/orderupdate"

	"gorm.io/gorm"
)

// GormOrderUpdateRepository implements ports.OrderUpdateRepository using GORM.
// The trail is append-only; there is no update or delete path.
type GormOrderUpdateRepository struct {
	db *gorm.DB
}

// NewGormOrderUpdateRepository creates a new GORM audit trail repository.
func NewGormOrderUpdateRepository(db *gorm.DB) *GormOrderUpdateRepository {
	return &GormOrderUpdateRepository{db: db}
}

// Add appends an audit record.
func (r *GormOrderUpdateRepository) Add(ctx context.Context, update *orderupdate.OrderUpdate) error {
	if err := update.Validate(); err != nil {
		return err
	}

	dto := fromDomain(update)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllByOrder retrieves the audit trail for one order, newest first.
func (r *GormOrderUpdateRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*orderupdate.OrderUpdate, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderUpdateDTO
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	updates := make([]*orderupdate.OrderUpdate, 0, len(dtos))
	for _, dto := range dtos {
		update, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}

	return updates, nil
}
