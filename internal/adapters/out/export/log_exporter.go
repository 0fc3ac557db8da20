// Package export contains outbound adapters that hand cancelled or
// completed orders to external bookkeeping targets.
package export

import (
	"context"
	"log/slog"

	"waterdelivery/internal/core/ports"
	"waterdelivery/internal/pkg/errs"
)

// LogExportSink writes order export records to the structured log. It
// stands in for a spreadsheet or accounting integration.
type LogExportSink struct {
	logger *slog.Logger
}

// NewLogExportSink creates an export sink backed by the given logger.
func NewLogExportSink(logger *slog.Logger) (*LogExportSink, error) {
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	return &LogExportSink{
		logger: logger.With("component", "export_sink"),
	}, nil
}

func (s *LogExportSink) Export(ctx context.Context, record ports.OrderExportRecord) error {
	if record.OrderID == "" {
		return errs.NewValueIsRequiredError("record.OrderID")
	}

	s.logger.InfoContext(ctx, "order exported",
		"order_id", record.OrderID,
		"user_id", record.UserID,
		"address_id", record.AddressID,
		"qty_a", record.QtyA,
		"qty_b", record.QtyB,
		"total_qty", record.TotalQty,
		"delivery_date", record.DeliveryDate,
		"status", record.Status,
		"comment", record.Comment,
		"created_at", record.CreatedAt,
	)
	return nil
}

var _ ports.ExportSink = (*LogExportSink)(nil)
