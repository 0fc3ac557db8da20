// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. The Unit of Work maintains a list of objects affected by
// a business transaction and coordinates writing out changes and
// resolving concurrency problems.
//
// Key Features:
//   - Transaction management across multiple repositories
//   - Aggregate tracking for domain event processing
//   - Advisory capacity locks serializing slot allocation
//   - Proper isolation between concurrent operations
//   - Repository factory pattern for consistent database connections
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.LockCapacity(ctx, zone); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Capacity-affecting operations must call LockCapacity before
//     reading consumption, otherwise two transactions can both claim the
//     last remaining units of a date
//   - Serialization failures and deadlocks surface as
//     errs.ErrConcurrencyConflict so callers can retry the operation
package postgres

import (
	"context"
	"errors"

	"waterdelivery/internal/adapters/out/postgres/addressrepo"
	"waterdelivery/internal/adapters/out/postgres/orderrepo"
	"waterdelivery/internal/adapters/out/postgres/schedulerepo"
	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/ports"
	"waterdelivery/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// globalCapacityKey is the advisory lock key shared by every capacity
// allocation regardless of zone. It is always taken before the zone key
// so concurrent allocations cannot deadlock.
const globalCapacityKey = "capacity/global"

// Postgres error codes treated as retryable concurrency conflicts.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // Will be changed to a common Aggregate interface in the future
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. It implements the Unit of Work pattern
// using GORM's transaction capabilities, and carries the advisory locks
// that make capacity allocation safe under concurrency.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
// Serialization failures are reported as errs.ErrConcurrencyConflict.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return mapConcurrencyError("commit", err)
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// LockCapacity takes the advisory transaction locks that serialize slot
// allocation: first the shared global key, then the zone key. The locks
// are released automatically on commit or rollback.
//
// Every capacity-affecting operation must call this before reading
// consumed quantities; the fixed lock order keeps concurrent allocations
// deadlock-free.
func (uow *GormUnitOfWork) LockCapacity(ctx context.Context, zone string) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", globalCapacityKey).Error
	if err != nil {
		return mapConcurrencyError("lock global capacity", err)
	}

	err = uow.tx.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "capacity/zone/"+zone).Error
	if err != nil {
		return mapConcurrencyError("lock zone capacity", err)
	}

	return nil
}

// OrderRepository provides access to order persistence operations within
// the unit of work. Operations execute within the current transaction if
// one is active, otherwise on the main connection. Added and updated
// aggregates are tracked on the unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// ScheduleRepository provides access to zone capacity and holiday records
// within the unit of work.
func (uow *GormUnitOfWork) ScheduleRepository() ports.ScheduleRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return schedulerepo.NewGormScheduleRepository(db)
}

// AddressRepository provides read access to delivery addresses within the
// unit of work.
func (uow *GormUnitOfWork) AddressRepository() ports.AddressRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return addressrepo.NewGormAddressRepository(db)
}

// TrackAggregate registers a domain aggregate as modified within this
// unit of work. Called by repository implementations when aggregates are
// added or updated; tracked aggregates enable post-commit processing such
// as domain event publishing.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// mapConcurrencyError translates retryable postgres failures into
// errs.ErrConcurrencyConflict. Other errors, including nil, pass through.
// Both driver error types are checked because GORM connects through pgx
// while auxiliary connections use lib/pq.
func mapConcurrencyError(operation string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected {
			return errs.NewConcurrencyConflictError(operation, err)
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if string(pqErr.Code) == codeSerializationFailure || string(pqErr.Code) == codeDeadlockDetected {
			return errs.NewConcurrencyConflictError(operation, err)
		}
	}

	return err
}
