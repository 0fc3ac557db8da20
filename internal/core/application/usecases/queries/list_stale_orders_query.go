package queries

import (
	"errors"

	"waterdelivery/internal/pkg/guard"
)

var (
	ErrListStaleOrdersQueryIsNotConstructed = errors.New(
		"ListStaleOrdersQuery must be created via NewListStaleOrdersQuery constructor",
	)
	ErrHoursIsInvalid = errors.New("hours must be greater than 0")
)

// ListStaleOrdersQuery retrieves orders that have been awaiting
// confirmation for longer than the given number of hours.
type ListStaleOrdersQuery struct {
	hours int

	guard guard.ConstructorGuard
}

// NewListStaleOrdersQuery creates a stale order query. hours must be
// positive.
func NewListStaleOrdersQuery(hours int) (ListStaleOrdersQuery, error) {
	if hours <= 0 {
		return ListStaleOrdersQuery{}, ErrHoursIsInvalid
	}

	return ListStaleOrdersQuery{
		hours: hours,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListStaleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListStaleOrdersQueryIsNotConstructed)
}

// Hours returns the staleness threshold in hours.
func (q ListStaleOrdersQuery) Hours() int {
	return q.hours
}
