// Package session carries the authenticated caller's identity through the
// application layer. A Session is resolved once per request from the verified
// token and passed down explicitly; handlers never re-derive the role from
// request data.
package session

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/profile"
	"dispatch/internal/pkg/guard"
)

// ErrSessionIsNotConstructed is returned when a Session was not created via
// NewSession.
var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession")

// Session is the caller's resolved identity: user id, role, and the
// capability set derived from that role. It is immutable for the lifetime of
// a request.
type Session struct {
	userID       kernel.UUID
	role         profile.Role
	capabilities profile.Capabilities

	guard guard.ConstructorGuard
}

// NewSession resolves a session from a verified user id and role.
func NewSession(userID kernel.UUID, role profile.Role) (Session, error) {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return Session{}, err
	}

	return Session{
		userID:       userID,
		role:         role,
		capabilities: role.Capabilities(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Session was created through NewSession.
func (s Session) Validate() error {
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s Session) UserID() kernel.UUID                 { return s.userID }
func (s Session) Role() profile.Role                  { return s.role }
func (s Session) Capabilities() profile.Capabilities  { return s.capabilities }

// Actor returns the caller's transition-table authority.
func (s Session) Actor() order.Actor {
	return s.role.Actor()
}

// IsAdmin reports whether the caller holds admin or super-admin authority.
func (s Session) IsAdmin() bool {
	return s.role == profile.RoleAdmin || s.role == profile.RoleSuperAdmin
}

// IsDriver reports whether the caller is a driver.
func (s Session) IsDriver() bool {
	return s.role == profile.RoleDriver
}
