package profile

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrProfileIsNotConstructed is returned when a Profile was not created
// through NewProfile or RestoreProfile.
var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile or RestoreProfile")

// AccountStatus is the activation state of a user account. Only active
// accounts may authenticate.
type AccountStatus int

const (
	AccountUnknown AccountStatus = iota
	AccountActive
	AccountSuspended
	AccountPending
)

func getAccountStatusStrings() map[AccountStatus]string {
	return map[AccountStatus]string{
		AccountActive:    "active",
		AccountSuspended: "suspended",
		AccountPending:   "pending",
	}
}

// AccountStatusFromString parses the persisted form of an account status.
func AccountStatusFromString(s string) (AccountStatus, error) {
	for status, str := range getAccountStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return AccountUnknown, errs.NewValueIsInvalidErrorWithCause(
		"account status", fmt.Errorf("%q is not a valid account status", s))
}

// Validate reports whether the account status is valid.
func (s AccountStatus) Validate() error {
	if _, ok := getAccountStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"account status", fmt.Errorf("%d is not a valid account status", s))
	}
	return nil
}

func (s AccountStatus) String() string {
	if str, ok := getAccountStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Profile is a user account with its role and contact details. Drivers carry
// the admin they report to in adminID; admins and super-admins leave it nil.
type Profile struct {
	userID       kernel.UUID
	email        string
	passwordHash string
	role         Role
	status       AccountStatus
	fullName     string
	phone        string
	adminID      *kernel.UUID
	createdAt    time.Time
	updatedAt    time.Time

	guard guard.ConstructorGuard
}

// NewProfile creates a user profile. New accounts start pending until an
// admin activates them.
func NewProfile(
	userID kernel.UUID,
	email string,
	passwordHash string,
	role Role,
	fullName string,
	phone string,
	adminID *kernel.UUID,
) (*Profile, error) {
	if err := errors.Join(
		userID.Validate(),
		validateEmail(email),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("password hash")
	}
	if adminID != nil {
		if err := adminID.Validate(); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	return &Profile{
		userID:       userID,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		status:       AccountPending,
		fullName:     fullName,
		phone:        phone,
		adminID:      adminID,
		createdAt:    now,
		updatedAt:    now,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreProfile reconstructs a profile from persistence.
func RestoreProfile(
	userID kernel.UUID,
	email string,
	passwordHash string,
	role Role,
	status AccountStatus,
	fullName string,
	phone string,
	adminID *kernel.UUID,
	createdAt, updatedAt time.Time,
) (*Profile, error) {
	if err := errors.Join(
		userID.Validate(),
		role.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Profile{
		userID:       userID,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		status:       status,
		fullName:     fullName,
		phone:        phone,
		adminID:      adminID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func validateEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	return nil
}

// Validate ensures the Profile was created through a constructor.
func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

func (p *Profile) UserID() kernel.UUID   { return p.userID }
func (p *Profile) Email() string         { return p.email }
func (p *Profile) PasswordHash() string  { return p.passwordHash }
func (p *Profile) Role() Role            { return p.role }
func (p *Profile) Status() AccountStatus { return p.status }
func (p *Profile) FullName() string      { return p.fullName }
func (p *Profile) Phone() string         { return p.phone }
func (p *Profile) AdminID() *kernel.UUID { return p.adminID }
func (p *Profile) CreatedAt() time.Time  { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time  { return p.updatedAt }

// IsActive reports whether the account may authenticate.
func (p *Profile) IsActive() bool {
	return p.status == AccountActive
}

// Activate turns a pending or suspended account active.
func (p *Profile) Activate() {
	p.status = AccountActive
	p.updatedAt = time.Now().UTC()
}

// Suspend blocks the account from authenticating.
func (p *Profile) Suspend() {
	p.status = AccountSuspended
	p.updatedAt = time.Now().UTC()
}
