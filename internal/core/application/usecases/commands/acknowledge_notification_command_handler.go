package commands

import (
	"context"

	"mealtrack/internal/core/ports"
)

// AcknowledgeNotificationCommandHandler dismisses a single feed entry.
// Dismissal is idempotent: acknowledging an id that is not in the feed
// succeeds and changes nothing. The order's own history is never touched.
type AcknowledgeNotificationCommandHandler struct {
	feed ports.NotificationFeed
}

// NewAcknowledgeNotificationCommandHandler creates a handler for feed dismissal.
func NewAcknowledgeNotificationCommandHandler(feed ports.NotificationFeed) AcknowledgeNotificationCommandHandler {
	return AcknowledgeNotificationCommandHandler{
		feed: feed,
	}
}

// Handle processes the dismissal command.
func (h *AcknowledgeNotificationCommandHandler) Handle(ctx context.Context, cmd AcknowledgeNotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.feed.Acknowledge(ctx, cmd.UpdateID())
}
