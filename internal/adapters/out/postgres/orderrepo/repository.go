package orderrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsNumber reports whether an order with the given number exists.
func (r *GormOrderRepository) ExistsNumber(ctx context.Context, number order.Number) (bool, error) {
	if err := number.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("number = ?", number.String()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAllByCreator retrieves every order created by the given admin, newest first.
func (r *GormOrderRepository) GetAllByCreator(ctx context.Context, createdBy kernel.UUID) ([]*order.Order, error) {
	if err := createdBy.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "created_by = ?", createdBy.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByDriver retrieves every order assigned to the given driver, newest first.
func (r *GormOrderRepository) GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "driver_id = ?", driverID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// UpdateStatusByIDs sets the status on every order in the id set in one
// batched write. No precondition is checked against the current statuses.
func (r *GormOrderRepository) UpdateStatusByIDs(ctx context.Context, ids []kernel.UUID, status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	rawIDs, err := rawIDSet(ids)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id IN ?", rawIDs).
		Updates(map[string]any{
			"status":     status.String(),
			"updated_at": time.Now().UTC(),
		}).Error
}

// AssignDriverByIDs sets the driver and forces status to assigned on every
// order in the id set, stamping assignment and update times.
func (r *GormOrderRepository) AssignDriverByIDs(ctx context.Context, ids []kernel.UUID, driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	rawIDs, err := rawIDSet(ids)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id IN ?", rawIDs).
		Updates(map[string]any{
			"driver_id":   driverID.Bytes(),
			"status":      order.Assigned.String(),
			"assigned_at": now,
			"updated_at":  now,
		}).Error
}

// DeleteByIDs permanently removes every order in the id set.
func (r *GormOrderRepository) DeleteByIDs(ctx context.Context, ids []kernel.UUID) error {
	rawIDs, err := rawIDSet(ids)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&OrderDTO{}, "id IN ?", rawIDs).Error
}

func rawIDSet(ids []kernel.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("order ids")
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	return rawIDs, nil
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
