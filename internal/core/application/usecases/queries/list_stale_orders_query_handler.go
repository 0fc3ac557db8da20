package queries

import (
	"context"
	"time"

	"waterdelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListStaleOrdersQueryHandler reads orders stuck in New status past a
// caller-chosen age.
type ListStaleOrdersQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewListStaleOrdersQueryHandler creates a handler for stale order queries.
func NewListStaleOrdersQueryHandler(db *gorm.DB) ListStaleOrdersQueryHandler {
	return ListStaleOrdersQueryHandler{db: db, now: time.Now}
}

// Handle returns every New order created more than query.Hours() ago,
// oldest first.
func (h ListStaleOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListStaleOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	threshold := h.now().Add(-time.Duration(query.Hours()) * time.Hour)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ? AND created_at < ?
		ORDER BY created_at
	`, order.New.String(), threshold).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
