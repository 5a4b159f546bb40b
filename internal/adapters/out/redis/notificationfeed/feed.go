// Package notificationfeed provides the Redis-backed implementation of the
// notification feed. Entries live in a single Redis list, most recent first,
// trimmed to a fixed capacity on every publish.
package notificationfeed

import (
	"context"
	"encoding/json"
	"time"

	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/core/domain/model/order"

	"github.com/redis/go-redis/v9"
)

// feedKey is the Redis list holding the feed.
const feedKey = "notifications:feed"

// FeedCapacity bounds the number of retained entries. Older entries are
// evicted on publish.
const FeedCapacity = 100

// entryDTO is the JSON shape of one feed entry.
type entryDTO struct {
	ID               string       `json:"id"`
	OrderID          string       `json:"orderId"`
	Status           string       `json:"status"`
	Message          string       `json:"message"`
	Timestamp        time.Time    `json:"timestamp"`
	EstimatedMinutes *int         `json:"estimatedMinutes,omitempty"`
	Location         *locationDTO `json:"location,omitempty"`
}

type locationDTO struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Address    string    `json:"address"`
	RecordedAt time.Time `json:"recordedAt"`
}

// RedisNotificationFeed implements the NotificationFeed port on a Redis list.
type RedisNotificationFeed struct {
	client *redis.Client
}

// NewRedisNotificationFeed creates a feed backed by the given Redis client.
func NewRedisNotificationFeed(client *redis.Client) *RedisNotificationFeed {
	return &RedisNotificationFeed{client: client}
}

// Publish prepends the update to the feed and trims it to FeedCapacity.
func (f *RedisNotificationFeed) Publish(ctx context.Context, update *order.Update) error {
	if err := update.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(fromDomain(update))
	if err != nil {
		return err
	}

	pipe := f.client.TxPipeline()
	pipe.LPush(ctx, feedKey, payload)
	pipe.LTrim(ctx, feedKey, 0, FeedCapacity-1)
	_, err = pipe.Exec(ctx)
	return err
}

// List returns up to limit entries, most recent first. A non-positive limit
// returns the whole feed.
func (f *RedisNotificationFeed) List(ctx context.Context, limit int) ([]*order.Update, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	raw, err := f.client.LRange(ctx, feedKey, 0, stop).Result()
	if err != nil {
		return nil, err
	}

	updates := make([]*order.Update, 0, len(raw))
	for _, payload := range raw {
		var dto entryDTO
		if err := json.Unmarshal([]byte(payload), &dto); err != nil {
			return nil, err
		}
		update, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}

	return updates, nil
}

// Acknowledge removes the entry with the given update id from the feed.
// Missing ids are ignored. Redis LREM matches whole payloads, so the entry is
// located first and removed by its exact value.
func (f *RedisNotificationFeed) Acknowledge(ctx context.Context, updateID kernel.UUID) error {
	if err := updateID.Validate(); err != nil {
		return err
	}

	raw, err := f.client.LRange(ctx, feedKey, 0, -1).Result()
	if err != nil {
		return err
	}

	id := updateID.String()
	for _, payload := range raw {
		var dto entryDTO
		if err := json.Unmarshal([]byte(payload), &dto); err != nil {
			return err
		}
		if dto.ID == id {
			return f.client.LRem(ctx, feedKey, 1, payload).Err()
		}
	}

	return nil
}

// Clear removes all entries from the feed.
func (f *RedisNotificationFeed) Clear(ctx context.Context) error {
	return f.client.Del(ctx, feedKey).Err()
}

func fromDomain(update *order.Update) entryDTO {
	dto := entryDTO{
		ID:               update.ID().String(),
		OrderID:          update.OrderID().String(),
		Status:           update.Status().String(),
		Message:          update.Message(),
		Timestamp:        update.Timestamp(),
		EstimatedMinutes: update.EstimatedMinutes(),
	}

	if location := update.Location(); location != nil {
		dto.Location = &locationDTO{
			Latitude:   location.Point().Latitude(),
			Longitude:  location.Point().Longitude(),
			Address:    location.Address(),
			RecordedAt: location.RecordedAt(),
		}
	}

	return dto
}

func toDomain(dto entryDTO) (*order.Update, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var location *order.TrackingPoint
	if dto.Location != nil {
		point, pointErr := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		trackingPoint, tpErr := order.NewTrackingPoint(point, dto.Location.Address, dto.Location.RecordedAt)
		if tpErr != nil {
			return nil, tpErr
		}
		location = &trackingPoint
	}

	return order.RestoreUpdate(id, orderID, status, dto.Message, dto.Timestamp, dto.EstimatedMinutes, location)
}
