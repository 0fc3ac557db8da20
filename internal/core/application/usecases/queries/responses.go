// Package queries contains read operations of the CQRS split. Handlers
// read through raw SQL over the GORM connection and return flat response
// structs; they never load aggregates or mutate state.
package queries

import (
	"database/sql"
	"time"
)

// OrderResponse is the flat read model of an order returned by the list
// queries.
type OrderResponse struct {
	ID           string
	UserID       string
	AddressID    *string
	QtyA         int
	QtyB         int
	TotalQty     int
	DeliveryDate *string
	Status       string
	Comment      string
	CreatedAt    time.Time
}

// orderColumns is the select list every order query shares, in the order
// scanOrderRows expects.
const orderColumns = `
		id,
		user_id,
		address_id,
		qty_a,
		qty_b,
		total_qty,
		to_char(delivery_date, 'YYYY-MM-DD'),
		status,
		comment,
		created_at`

// scanOrderRows drains rows produced by a SELECT over orderColumns.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var resp OrderResponse
		if err := rows.Scan(
			&resp.ID,
			&resp.UserID,
			&resp.AddressID,
			&resp.QtyA,
			&resp.QtyB,
			&resp.TotalQty,
			&resp.DeliveryDate,
			&resp.Status,
			&resp.Comment,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
