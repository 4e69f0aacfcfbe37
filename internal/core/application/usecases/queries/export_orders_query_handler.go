package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// exportHeader is the client-visible CSV contract. Fields are comma-joined
// with no quoting or escaping, so embedded commas break the column layout;
// that limitation is part of the contract and must not be fixed by switching
// to a quoting CSV writer.
const exportHeader = "Order Number,Customer Name,Customer Phone,Pickup Address,Delivery Address,Status,Created Date"

// exportDateLayout renders dates like 1/2/2006 without zero padding.
const exportDateLayout = "1/2/2006"

// ExportOrdersQueryHandler renders an admin's orders as CSV text, one row per
// order in current view order (newest first).
type ExportOrdersQueryHandler struct {
	db *gorm.DB
}

// NewExportOrdersQueryHandler creates a handler for CSV export.
func NewExportOrdersQueryHandler(db *gorm.DB) ExportOrdersQueryHandler {
	return ExportOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the CSV document.
func (h ExportOrdersQueryHandler) Handle(ctx context.Context, query ExportOrdersQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE created_by = ?
		ORDER BY created_at DESC
	`, query.CreatedBy().String()).Rows()
	if err != nil {
		return "", err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return "", scanErr
		}
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return "", err
	}

	return renderOrdersCSV(views), nil
}

func renderOrdersCSV(views []OrderView) string {
	lines := make([]string, 0, len(views)+1)
	lines = append(lines, exportHeader)

	for _, view := range views {
		lines = append(lines, strings.Join([]string{
			view.Number,
			view.CustomerName,
			view.CustomerPhone,
			view.PickupAddress,
			view.DeliveryAddress,
			view.Status.String(),
			view.CreatedAt.Format(exportDateLayout),
		}, ","))
	}

	return strings.Join(lines, "\n")
}
