package http

import (
	"time"

	"waterdelivery/internal/core/application/usecases/queries"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
// preferred_date is optional and formatted YYYY-MM-DD.
type CreateOrderRequest struct {
	UserID        string `json:"user_id"`
	AddressID     string `json:"address_id"`
	QtyA          int    `json:"qty_a"`
	QtyB          int    `json:"qty_b"`
	Comment       string `json:"comment"`
	PreferredDate string `json:"preferred_date"`
}

// CreateOrderResponse reports the booked slot for a created order.
type CreateOrderResponse struct {
	OrderID        string `json:"order_id"`
	DeliveryDate   string `json:"delivery_date"`
	ZoneRemaining  int    `json:"zone_remaining"`
	TotalRemaining int    `json:"total_remaining"`
}

// EditOrderRequest is the body of PATCH /api/v1/orders/:id. Absent fields
// keep their current values.
type EditOrderRequest struct {
	QtyA    *int    `json:"qty_a"`
	QtyB    *int    `json:"qty_b"`
	Comment *string `json:"comment"`
}

// TransitionRequest is the body shared by the lifecycle endpoints.
// date is only read by reschedule.
type TransitionRequest struct {
	OperatorID *string `json:"operator_id"`
	Comment    string  `json:"comment"`
	Date       string  `json:"date"`
}

// OrderJSON is the wire shape of an order in listing responses.
type OrderJSON struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	AddressID    *string   `json:"address_id"`
	QtyA         int       `json:"qty_a"`
	QtyB         int       `json:"qty_b"`
	TotalQty     int       `json:"total_qty"`
	DeliveryDate *string   `json:"delivery_date"`
	Status       string    `json:"status"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// LogEntryJSON is the wire shape of one audit trail entry.
type LogEntryJSON struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	Action     string    `json:"action"`
	OldStatus  *string   `json:"old_status"`
	NewStatus  *string   `json:"new_status"`
	OperatorID *string   `json:"operator_id"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// SlotJSON is the body of GET /api/v1/slots responses.
type SlotJSON struct {
	Date           string `json:"date"`
	ZoneRemaining  int    `json:"zone_remaining"`
	TotalRemaining int    `json:"total_remaining"`
}

func toOrderJSONList(orders []queries.OrderResponse) []OrderJSON {
	response := make([]OrderJSON, len(orders))
	for i, o := range orders {
		response[i] = OrderJSON{
			ID:           o.ID,
			UserID:       o.UserID,
			AddressID:    o.AddressID,
			QtyA:         o.QtyA,
			QtyB:         o.QtyB,
			TotalQty:     o.TotalQty,
			DeliveryDate: o.DeliveryDate,
			Status:       o.Status,
			Comment:      o.Comment,
			CreatedAt:    o.CreatedAt,
		}
	}
	return response
}
