package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetSystemStatsQueryIsNotConstructed = errors.New(
	"GetSystemStatsQuery must be created via NewGetSystemStatsQuery constructor",
)

// GetSystemStatsQuery retrieves system-wide counters for the super-admin
// dashboard: every profile by role and every order by status.
type GetSystemStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSystemStatsQuery creates a system stats query.
func NewGetSystemStatsQuery() GetSystemStatsQuery {
	return GetSystemStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSystemStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetSystemStatsQueryIsNotConstructed)
}

// GetSystemStatsQueryResponse holds the system-wide counters keyed by the
// persisted role and status strings.
type GetSystemStatsQueryResponse struct {
	UsersByRole    map[string]int
	OrdersByStatus map[string]int
}
