package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAdminOrdersQueryIsNotConstructed = errors.New(
	"GetAdminOrdersQuery must be created via NewGetAdminOrdersQuery constructor",
)

// GetAdminOrdersQuery retrieves the orders created by one admin, partitioned
// into the admin view tabs.
type GetAdminOrdersQuery struct {
	createdBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAdminOrdersQuery creates a query scoped to the given admin.
func NewGetAdminOrdersQuery(createdBy kernel.UUID) (GetAdminOrdersQuery, error) {
	if err := createdBy.Validate(); err != nil {
		return GetAdminOrdersQuery{}, err
	}

	return GetAdminOrdersQuery{
		createdBy: createdBy,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAdminOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminOrdersQueryIsNotConstructed)
}

// CreatedBy returns the admin whose orders are listed.
func (q GetAdminOrdersQuery) CreatedBy() kernel.UUID { return q.createdBy }

// GetAdminOrdersQueryResponse partitions the admin's orders into tabs:
// pending / active {assigned, picked_up, in_transit} / completed {delivered,
// cancelled}. Failed orders appear in All but in no tab; the gap is observed
// behavior and deliberately not papered over here.
type GetAdminOrdersQueryResponse struct {
	All       []OrderView
	Pending   []OrderView
	Active    []OrderView
	Completed []OrderView
}
