package commands

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// importColumns is the expected CSV header for bulk import, matched
// case-insensitively.
var importColumns = []string{
	"customer name",
	"customer phone",
	"customer email",
	"pickup address",
	"delivery address",
	"delivery notes",
	"priority",
}

// ImportOrdersCommandHandler bulk-creates orders from a CSV file. Rows are
// validated with the same rules as single order creation and all rows are
// written in one transaction, so a bad row imports nothing.
type ImportOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewImportOrdersCommandHandler creates a handler for CSV order import.
func NewImportOrdersCommandHandler(uowFactory OrderUoWFactory) ImportOrdersCommandHandler {
	return ImportOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the import and returns the number of orders created.
func (h *ImportOrdersCommandHandler) Handle(ctx context.Context, cmd ImportOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	aggregates, err := h.parse(cmd)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	for _, aggregate := range aggregates {
		if err = orderRepo.Add(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(aggregates), nil
}

func (h *ImportOrdersCommandHandler) parse(cmd ImportOrdersCommand) ([]*order.Order, error) {
	reader := csv.NewReader(cmd.File())
	reader.FieldsPerRecord = len(importColumns)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("file", err)
	}
	if len(records) < 2 {
		return nil, errs.NewValueIsInvalidError("file has no data rows")
	}

	if err = validateImportHeader(records[0]); err != nil {
		return nil, err
	}

	aggregates := make([]*order.Order, 0, len(records)-1)
	for i, row := range records[1:] {
		priority := order.DefaultPriority
		if row[6] != "" {
			priority, err = order.PriorityFromString(strings.ToLower(row[6]))
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}

		aggregate, err := order.NewOrder(
			kernel.NewUUID(),
			order.GenerateNumber(),
			cmd.CreatedBy(),
			order.Details{
				CustomerName:    row[0],
				CustomerPhone:   row[1],
				CustomerEmail:   row[2],
				PickupAddress:   row[3],
				DeliveryAddress: row[4],
				DeliveryNotes:   row[5],
			},
			priority,
			nil)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}

func validateImportHeader(header []string) error {
	for i, want := range importColumns {
		if strings.ToLower(strings.TrimSpace(header[i])) != want {
			return errs.NewValueIsInvalidError(
				fmt.Sprintf("unexpected column %q, want %q", header[i], want))
		}
	}
	return nil
}
