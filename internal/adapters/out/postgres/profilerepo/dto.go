// Package profilerepo persists user profiles with their roles and account
// activation state.
package profilerepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/profile"

	"github.com/google/uuid"
)

// ProfileDTO represents the database structure for user profiles.
type ProfileDTO struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"index;not null"`
	Status       string    `gorm:"not null"`
	FullName     string
	Phone        string
	AdminID      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for user profiles.
func (ProfileDTO) TableName() string {
	return "user_profiles"
}

func fromDomain(p *profile.Profile) ProfileDTO {
	var adminID *uuid.UUID
	if id := p.AdminID(); id != nil {
		raw := id.Bytes()
		adminID = &raw
	}

	return ProfileDTO{
		UserID:       p.UserID().Bytes(),
		Email:        p.Email(),
		PasswordHash: p.PasswordHash(),
		Role:         p.Role().String(),
		Status:       p.Status().String(),
		FullName:     p.FullName(),
		Phone:        p.Phone(),
		AdminID:      adminID,
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func toDomain(dto ProfileDTO) (*profile.Profile, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var adminID *kernel.UUID
	if dto.AdminID != nil {
		aID, adminErr := kernel.UUIDFromBytes((*dto.AdminID)[:])
		if adminErr != nil {
			return nil, adminErr
		}
		adminID = &aID
	}

	role, err := profile.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	status, err := profile.AccountStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return profile.RestoreProfile(
		userID,
		dto.Email,
		dto.PasswordHash,
		role,
		status,
		dto.FullName,
		dto.Phone,
		adminID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
