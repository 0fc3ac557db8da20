package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler reads a page of one user's order history.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for user history queries.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle returns the requested page of the user's orders, newest first.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, query.UserID().Bytes(), query.Limit(), query.Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
