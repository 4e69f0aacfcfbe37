package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrExportOrdersQueryIsNotConstructed = errors.New(
	"ExportOrdersQuery must be created via NewExportOrdersQuery constructor",
)

// ExportOrdersQuery renders an admin's orders as CSV text.
type ExportOrdersQuery struct {
	createdBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewExportOrdersQuery creates a CSV export query scoped to the given admin.
func NewExportOrdersQuery(createdBy kernel.UUID) (ExportOrdersQuery, error) {
	if err := createdBy.Validate(); err != nil {
		return ExportOrdersQuery{}, err
	}

	return ExportOrdersQuery{
		createdBy: createdBy,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ExportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportOrdersQueryIsNotConstructed)
}

// CreatedBy returns the admin whose orders are exported.
func (q ExportOrdersQuery) CreatedBy() kernel.UUID { return q.createdBy }
