// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored by their canonical string identifier so rows stay
// readable and stable across releases. The delivery date is a plain DATE;
// NULL means no slot was assigned.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID  `gorm:"type:uuid;index"`
	AddressID    *uuid.UUID `gorm:"type:uuid;index"`
	QtyA         int
	QtyB         int
	TotalQty     int
	DeliveryDate *time.Time `gorm:"type:date;index:idx_orders_capacity"`
	Status       string     `gorm:"type:varchar(32);index;index:idx_orders_capacity"`
	Comment      string
	CreatedAt    time.Time `gorm:"index"`
	ConfirmedAt  *time.Time
	OperatorID   *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLogDTO represents one row of the append-only audit trail.
// Rows are only ever inserted.
type OrderLogDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;index"`
	Action     string     `gorm:"type:varchar(32)"`
	OldStatus  *string    `gorm:"type:varchar(32)"`
	NewStatus  *string    `gorm:"type:varchar(32)"`
	OperatorID *uuid.UUID `gorm:"type:uuid"`
	Comment    string
	CreatedAt  time.Time `gorm:"index"`
}

// TableName specifies the database table name for audit trail entries.
func (OrderLogDTO) TableName() string {
	return "order_logs"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var addressID *uuid.UUID
	if id := aggregate.AddressID(); id != nil {
		raw := id.Bytes()
		addressID = &raw
	}

	var operatorID *uuid.UUID
	if id := aggregate.OperatorID(); id != nil {
		raw := id.Bytes()
		operatorID = &raw
	}

	var deliveryDate *time.Time
	if date := aggregate.DeliveryDate(); !date.IsZero() {
		raw := date.Time()
		deliveryDate = &raw
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		UserID:       aggregate.UserID().Bytes(),
		AddressID:    addressID,
		QtyA:         aggregate.QtyA(),
		QtyB:         aggregate.QtyB(),
		TotalQty:     aggregate.TotalQty(),
		DeliveryDate: deliveryDate,
		Status:       aggregate.Status().String(),
		Comment:      aggregate.Comment(),
		CreatedAt:    aggregate.CreatedAt(),
		ConfirmedAt:  aggregate.ConfirmedAt(),
		OperatorID:   operatorID,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	addressID, err := optionalUUID(dto.AddressID)
	if err != nil {
		return nil, err
	}

	operatorID, err := optionalUUID(dto.OperatorID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var deliveryDate kernel.Day
	if dto.DeliveryDate != nil {
		deliveryDate = kernel.DayOf(dto.DeliveryDate.UTC())
	}

	return order.RestoreOrder(
		id,
		userID,
		addressID,
		dto.QtyA,
		dto.QtyB,
		dto.TotalQty,
		deliveryDate,
		status,
		dto.Comment,
		dto.CreatedAt,
		dto.ConfirmedAt,
		operatorID,
	)
}

// logFromDomain converts an audit trail entry to its database representation.
func logFromDomain(entry *order.LogEntry) OrderLogDTO {
	var oldStatus, newStatus *string
	if s := entry.OldStatus(); s != nil {
		raw := s.String()
		oldStatus = &raw
	}
	if s := entry.NewStatus(); s != nil {
		raw := s.String()
		newStatus = &raw
	}

	var operatorID *uuid.UUID
	if id := entry.OperatorID(); id != nil {
		raw := id.Bytes()
		operatorID = &raw
	}

	return OrderLogDTO{
		ID:         entry.ID().Bytes(),
		OrderID:    entry.OrderID().Bytes(),
		Action:     string(entry.Action()),
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
		OperatorID: operatorID,
		Comment:    entry.Comment(),
		CreatedAt:  entry.CreatedAt(),
	}
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
