// Package ports defines the contracts between the domain core and
// infrastructure: repositories, the unit of work, and outbound sinks for
// notifications and exports. These interfaces enable dependency inversion
// and testability.
package ports

import (
	"context"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates
// and their append-only audit log. It also serves the capacity ledger
// reads used during slot allocation; those reads run inside the caller's
// transaction so they observe a snapshot consistent with the subsequent
// insert.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetForUpdate retrieves an order aggregate by its unique identifier
	// and locks its row for the remainder of the caller's transaction.
	// Mutating handlers read through this so the lifecycle guard is
	// evaluated against the committed status rather than a snapshot a
	// concurrent writer may have already replaced. Single-order reads
	// outside a mutation go through the query handlers.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AppendLog persists one audit log entry. Entries are immutable and
	// never updated or deleted.
	AppendLog(ctx context.Context, entry *order.LogEntry) error

	// FindDuplicate looks for a non-cancelled order with the same user,
	// address and quantities created at or after the since instant.
	// Returns nil when no such order exists.
	FindDuplicate(
		ctx context.Context,
		userID kernel.UUID,
		addressID kernel.UUID,
		qtyA int,
		qtyB int,
		since time.Time,
	) (*order.Order, error)

	// GetStale retrieves orders still in New status created before the
	// threshold instant, oldest first.
	GetStale(ctx context.Context, threshold time.Time) ([]*order.Order, error)

	// ConsumedForDate sums total quantities over all non-cancelled orders
	// scheduled for the date.
	ConsumedForDate(ctx context.Context, date kernel.Day) (int, error)

	// ConsumedForZone sums total quantities over non-cancelled orders
	// scheduled for the date whose delivery address lies in the zone.
	ConsumedForZone(ctx context.Context, date kernel.Day, zone string) (int, error)
}
