package queries

import (
	"errors"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves the full audit trail of an order,
// oldest entry first.
type GetOrderHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates an audit trail query.
func NewGetOrderHistoryQuery(orderID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose trail is requested.
func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// LogEntryResponse is the flat read model of one audit trail entry.
// Status fields are nil for entries that did not change the status.
type LogEntryResponse struct {
	ID         string
	OrderID    string
	Action     string
	OldStatus  *string
	NewStatus  *string
	OperatorID *string
	Comment    string
	CreatedAt  time.Time
}
