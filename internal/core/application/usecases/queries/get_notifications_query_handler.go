package queries

import (
	"context"

	"mealtrack/internal/core/ports"
)

// GetNotificationsQueryHandler reads the notification feed.
// The feed already stores entries most recent first, capped at the feed
// capacity, so the handler only reshapes them into the read model.
type GetNotificationsQueryHandler struct {
	feed ports.NotificationFeed
}

// NewGetNotificationsQueryHandler creates a handler for feed queries.
func NewGetNotificationsQueryHandler(feed ports.NotificationFeed) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{feed: feed}
}

// Handle executes the query against the feed.
// Entries come back most recent first.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]TrackingUpdateResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	updates, err := h.feed.List(ctx, query.Limit())
	if err != nil {
		return nil, err
	}

	entries := make([]TrackingUpdateResponse, 0, len(updates))
	for _, update := range updates {
		entry := TrackingUpdateResponse{
			ID:               update.ID(),
			Status:           update.Status(),
			Message:          update.Message(),
			Timestamp:        update.Timestamp(),
			EstimatedMinutes: update.EstimatedMinutes(),
		}
		if location := update.Location(); location != nil {
			entry.Location = &TrackingLocationResponse{
				Latitude:   location.Point().Latitude(),
				Longitude:  location.Point().Longitude(),
				Address:    location.Address(),
				RecordedAt: location.RecordedAt(),
			}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
