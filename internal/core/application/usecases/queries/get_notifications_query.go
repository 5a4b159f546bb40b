package queries

import (
	"errors"

	"mealtrack/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves entries from the notification feed,
// most recent first.
type GetNotificationsQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for up to limit feed entries.
// A non-positive limit retrieves the whole feed.
func NewGetNotificationsQuery(limit int) GetNotificationsQuery {
	return GetNotificationsQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNotificationsQueryIsNotConstructed if validation fails.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// Limit returns the requested number of entries.
func (q GetNotificationsQuery) Limit() int {
	return q.limit
}
