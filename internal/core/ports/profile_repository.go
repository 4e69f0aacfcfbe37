package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/profile"
)

// ProfileRepository defines the persistence contract for user profiles.
type ProfileRepository interface {
	// Add persists a new profile.
	Add(ctx context.Context, p *profile.Profile) error

	// Update persists changes to an existing profile.
	Update(ctx context.Context, p *profile.Profile) error

	// Get retrieves a profile by user id.
	// Returns errs.ObjectNotFoundError when no such profile exists.
	Get(ctx context.Context, userID kernel.UUID) (*profile.Profile, error)

	// GetByEmail retrieves a profile by its unique email.
	// Returns errs.ObjectNotFoundError when no such profile exists.
	GetByEmail(ctx context.Context, email string) (*profile.Profile, error)

	// GetAllByRole retrieves every profile with the given role.
	GetAllByRole(ctx context.Context, role profile.Role) ([]*profile.Profile, error)

	// GetDriversByAdmin retrieves the drivers reporting to the given admin.
	GetDriversByAdmin(ctx context.Context, adminID kernel.UUID) ([]*profile.Profile, error)
}
