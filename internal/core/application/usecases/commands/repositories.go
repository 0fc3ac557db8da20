// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"waterdelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CapacityLocker serializes slot allocation per zone within the
	// current transaction. Must be called before any capacity read that
	// feeds a booking decision.
	CapacityLocker interface {
		LockCapacity(ctx context.Context, zone string) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ScheduleRepoFactory provides access to the schedule repository within a transaction.
	ScheduleRepoFactory interface {
		ScheduleRepository() ports.ScheduleRepository
	}

	// AddressRepoFactory provides access to the address repository within a transaction.
	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by commands that touch order state without booking capacity.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AllocationUoW manages transactions for operations that book delivery
	// capacity. It exposes every repository the slot search needs plus the
	// capacity lock that makes the read-decide-insert sequence atomic.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   if err := uow.LockCapacity(ctx, zone); err != nil { ... }
	//   // ... read capacity, pick a date, persist the order
	//
	//   err = uow.Commit(ctx)
	AllocationUoW interface {
		TxManager
		CapacityLocker
		OrderRepoFactory
		ScheduleRepoFactory
		AddressRepoFactory
	}

	// AllocationUoWFactory creates new allocation unit of work instances.
	AllocationUoWFactory interface {
		Create() AllocationUoW
	}
)
