package commands

import (
	"context"

	"mealtrack/internal/core/ports"
)

// ClearNotificationsCommandHandler empties the notification feed. Orders and
// their histories are unaffected; the feed is only a projection.
type ClearNotificationsCommandHandler struct {
	feed ports.NotificationFeed
}

// NewClearNotificationsCommandHandler creates a handler for feed clearing.
func NewClearNotificationsCommandHandler(feed ports.NotificationFeed) ClearNotificationsCommandHandler {
	return ClearNotificationsCommandHandler{
		feed: feed,
	}
}

// Handle processes the clear command.
func (h *ClearNotificationsCommandHandler) Handle(ctx context.Context, cmd ClearNotificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.feed.Clear(ctx)
}
