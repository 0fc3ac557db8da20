// Package schedule contains the calendar-side entities of the delivery
// domain: ZoneCapacity, the per-zone daily delivery limit keyed by zone
// name, and Holiday, a calendar date excluded from delivery.
//
// Both entities are read by slot allocation and maintained by operators;
// neither participates in the order lifecycle directly.
package schedule
