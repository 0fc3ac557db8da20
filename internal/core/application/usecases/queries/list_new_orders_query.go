package queries

import (
	"errors"

	"waterdelivery/internal/pkg/guard"
)

var ErrListNewOrdersQueryIsNotConstructed = errors.New(
	"ListNewOrdersQuery must be created via NewListNewOrdersQuery constructor",
)

// ListNewOrdersQuery retrieves the operator worklist: every order still
// awaiting confirmation, oldest first.
//
// Example:
//
//	query := NewListNewOrdersQuery()
//	handler := NewListNewOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get worklist: %w", err)
//	}
//	fmt.Printf("%d orders waiting for confirmation\n", len(orders))
type ListNewOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListNewOrdersQuery creates a query for the operator worklist.
func NewListNewOrdersQuery() ListNewOrdersQuery {
	return ListNewOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListNewOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListNewOrdersQueryIsNotConstructed)
}
