package profilerepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/profile"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProfileRepository implements ports.ProfileRepository using GORM.
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GORM profile repository.
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// Add saves a new profile to the database.
func (r *GormProfileRepository) Add(ctx context.Context, p *profile.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing profile to the database.
func (r *GormProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).Model(&ProfileDTO{}).Where("user_id = ?", dto.UserID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("profile", p.UserID().String())
	}

	return nil
}

// Get retrieves a profile by user id.
func (r *GormProfileRepository) Get(ctx context.Context, userID kernel.UUID) (*profile.Profile, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("profile", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a profile by its unique email.
func (r *GormProfileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("profile", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByRole retrieves every profile with the given role.
func (r *GormProfileRepository) GetAllByRole(ctx context.Context, role profile.Role) ([]*profile.Profile, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProfileDTO
	if err := r.db.WithContext(ctx).
		Order("full_name").
		Find(&dtos, "role = ?", role.String()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetDriversByAdmin retrieves the drivers reporting to the given admin.
func (r *GormProfileRepository) GetDriversByAdmin(ctx context.Context, adminID kernel.UUID) ([]*profile.Profile, error) {
	if err := adminID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProfileDTO
	if err := r.db.WithContext(ctx).
		Order("full_name").
		Find(&dtos, "role = ? AND admin_id = ?", profile.RoleDriver.String(), adminID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []ProfileDTO) ([]*profile.Profile, error) {
	profiles := make([]*profile.Profile, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}
