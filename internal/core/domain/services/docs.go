// Package services contains the domain services of the slot allocation
// engine.
//
// CalendarPolicy decides which dates are open for delivery (cutoff hour,
// weekends, registered holidays). SlotFinder walks candidate dates forward
// applying CalendarPolicy and the capacity ledger to return the nearest
// date with enough remaining capacity in both the zone pool and the global
// pool.
//
// Both services depend only on narrow read contracts declared in this
// package; transactional consistency of those reads is the caller's
// responsibility.
package services
