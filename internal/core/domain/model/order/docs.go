// Package order implements the order aggregate for the water delivery domain.
// It contains the Order entity with its guarded lifecycle methods, the Status
// state machine driven by an explicit transition table, and the append-only
// LogEntry audit record produced by every mutation.
//
// The package enforces the core invariants of the engine: the total quantity
// always equals the sum of the two product quantities and never drops below
// one unit, status changes not present in the transition table are rejected
// with ErrInvalidTransition, and quantity edits are allowed only while an
// order is still New.
package order
