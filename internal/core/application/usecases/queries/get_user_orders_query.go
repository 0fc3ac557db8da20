package queries

import (
	"errors"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/guard"
)

var (
	ErrGetUserOrdersQueryIsNotConstructed = errors.New(
		"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
	)
	ErrLimitIsInvalid  = errors.New("limit must be between 1 and 100")
	ErrOffsetIsInvalid = errors.New("offset must be non-negative")
)

// MaxUserOrdersPageSize caps the page size of user history queries.
const MaxUserOrdersPageSize = 100

// GetUserOrdersQuery retrieves a page of one user's order history,
// newest first.
type GetUserOrdersQuery struct {
	userID kernel.UUID
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a user history query. limit must be
// between 1 and MaxUserOrdersPageSize, offset non-negative.
func NewGetUserOrdersQuery(userID kernel.UUID, limit, offset int) (GetUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}
	if limit < 1 || limit > MaxUserOrdersPageSize {
		return GetUserOrdersQuery{}, ErrLimitIsInvalid
	}
	if offset < 0 {
		return GetUserOrdersQuery{}, ErrOffsetIsInvalid
	}

	return GetUserOrdersQuery{
		userID: userID,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose history is requested.
func (q GetUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// Limit returns the page size.
func (q GetUserOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of newest orders to skip.
func (q GetUserOrdersQuery) Offset() int {
	return q.offset
}
