package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads the append-only audit trail of an
// order.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for audit trail queries.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns every audit entry of the order, oldest first.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]LogEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			action,
			old_status,
			new_status,
			operator_id,
			comment,
			created_at
		FROM order_logs
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]LogEntryResponse, 0)
	for rows.Next() {
		var resp LogEntryResponse
		if err = rows.Scan(
			&resp.ID,
			&resp.OrderID,
			&resp.Action,
			&resp.OldStatus,
			&resp.NewStatus,
			&resp.OperatorID,
			&resp.Comment,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
