package ports

import (
	"context"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
)

// NotificationSink delivers a plain-text message to a recipient contact.
// Delivery is synchronous from the caller's point of view; implementations
// may queue internally.
type NotificationSink interface {
	Send(ctx context.Context, recipient string, text string) error
}

// UserDirectory resolves the contacts notifications are sent to.
// Contacts are opaque strings owned by the notification channel.
type UserDirectory interface {
	// OperatorContacts returns the contacts of every on-duty operator.
	OperatorContacts(ctx context.Context) ([]string, error)

	// UserContact returns the contact of the user who placed an order.
	UserContact(ctx context.Context, userID kernel.UUID) (string, error)
}

// OrderExportRecord is the flattened shape of an order handed to an
// external export target.
type OrderExportRecord struct {
	OrderID      string
	UserID       string
	AddressID    string
	QtyA         int
	QtyB         int
	TotalQty     int
	DeliveryDate string
	Status       string
	Comment      string
	CreatedAt    time.Time
}

// ExportSink receives flattened order records for external bookkeeping,
// for example after an automatic cancellation.
type ExportSink interface {
	Export(ctx context.Context, record OrderExportRecord) error
}
