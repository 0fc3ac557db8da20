package orderrepo

import (
	"context"
	"errors"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select("*") forces zero values through, a quantity edited down to 0
	// must still be written.
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetForUpdate retrieves an order by ID with a row lock held until the
// surrounding transaction ends. Two transactions mutating the same order
// serialize here, so the second one sees the status the first committed.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AppendLog inserts one audit trail row. Audit rows are never updated.
func (r *GormOrderRepository) AppendLog(ctx context.Context, entry *order.LogEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := logFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// FindDuplicate looks for a non-cancelled order with the same user,
// address and quantities created at or after the since instant. Returns
// nil when no such order exists.
func (r *GormOrderRepository) FindDuplicate(
	ctx context.Context,
	userID kernel.UUID,
	addressID kernel.UUID,
	qtyA int,
	qtyB int,
	since time.Time,
) (*order.Order, error) {
	if err := errors.Join(userID.Validate(), addressID.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND address_id = ? AND qty_a = ? AND qty_b = ?", userID.Bytes(), addressID.Bytes(), qtyA, qtyB).
		Where("status != ?", order.Cancelled.String()).
		Where("created_at >= ?", since).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetStale retrieves orders still in New status created before the
// threshold instant, oldest first.
func (r *GormOrderRepository) GetStale(ctx context.Context, threshold time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "status = ? AND created_at < ?", order.New.String(), threshold).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// ConsumedForDate sums total quantities over all non-cancelled orders
// scheduled for the date.
func (r *GormOrderRepository) ConsumedForDate(ctx context.Context, date kernel.Day) (int, error) {
	if err := date.Validate(); err != nil {
		return 0, err
	}

	var consumed int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_qty), 0)
		FROM orders
		WHERE delivery_date = ? AND status != ?
	`, date.Time(), order.Cancelled.String()).Scan(&consumed).Error
	if err != nil {
		return 0, err
	}

	return consumed, nil
}

// ConsumedForZone sums total quantities over non-cancelled orders
// scheduled for the date whose delivery address lies in the zone.
func (r *GormOrderRepository) ConsumedForZone(ctx context.Context, date kernel.Day, zone string) (int, error) {
	if err := date.Validate(); err != nil {
		return 0, err
	}

	var consumed int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(o.total_qty), 0)
		FROM orders o
		JOIN addresses a ON a.id = o.address_id
		WHERE o.delivery_date = ? AND o.status != ? AND a.zone = ?
	`, date.Time(), order.Cancelled.String(), zone).Scan(&consumed).Error
	if err != nil {
		return 0, err
	}

	return consumed, nil
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
