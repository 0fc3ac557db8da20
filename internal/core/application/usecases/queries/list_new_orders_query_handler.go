package queries

import (
	"context"

	"waterdelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListNewOrdersQueryHandler reads the operator worklist from the database.
type ListNewOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListNewOrdersQueryHandler creates a handler for worklist queries.
// Requires a GORM database connection for query execution.
func NewListNewOrdersQueryHandler(db *gorm.DB) ListNewOrdersQueryHandler {
	return ListNewOrdersQueryHandler{db: db}
}

// Handle returns every order in New status, oldest first.
func (h ListNewOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListNewOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ?
		ORDER BY created_at
	`, order.New.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
