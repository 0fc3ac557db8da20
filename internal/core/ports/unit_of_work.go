package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// LockCapacity serializes capacity allocation for the zone within the
	// current transaction. It takes the global capacity lock first and
	// the zone lock second; every caller uses the same order, so two
	// allocations cannot deadlock. The locks are released on commit or
	// rollback.
	LockCapacity(ctx context.Context, zone string) error

	// OrderRepository returns an OrderRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	OrderRepository() OrderRepository

	// ScheduleRepository returns a ScheduleRepository instance bound to the current transaction.
	ScheduleRepository() ScheduleRepository

	// AddressRepository returns an AddressRepository instance bound to the current transaction.
	AddressRepository() AddressRepository
}
