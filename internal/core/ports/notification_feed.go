package ports

import (
	"context"

	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/core/domain/model/order"
)

// NotificationFeed is the capped, most-recent-first stream of order updates
// shown to the customer. Every status transition and simulated location ping
// is published here; the seed update of a freshly created order is not.
//
// The feed is a projection of the order history, not part of it: dropping or
// acknowledging entries never touches the orders' append-only updates.
type NotificationFeed interface {
	// Publish prepends the update to the feed, evicting the oldest entries
	// beyond the feed capacity.
	Publish(ctx context.Context, update *order.Update) error

	// List returns up to limit entries, most recent first. A non-positive
	// limit returns the whole feed.
	List(ctx context.Context, limit int) ([]*order.Update, error)

	// Acknowledge removes the entry with the given update id from the feed.
	// Acknowledging an id that is not present is not an error.
	Acknowledge(ctx context.Context, updateID kernel.UUID) error

	// Clear removes all entries from the feed.
	Clear(ctx context.Context) error
}
