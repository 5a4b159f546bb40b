package order_test

import (
	"testing"
	"time"

	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusUpdate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create update with fixed message for status", func(t *testing.T) {
		orderID := kernel.NewUUID()

		update, err := order.NewStatusUpdate(kernel.NewUUID(), orderID, order.Cooking, now)

		require.NoError(t, err)
		require.NoError(t, update.Validate())
		assert.True(t, update.OrderID().IsEqual(orderID))
		assert.Equal(t, order.Cooking, update.Status())
		assert.Equal(t, "Your meal is being freshly prepared by our expert chefs", update.Message())
		assert.Equal(t, now, update.Timestamp())
		assert.Nil(t, update.EstimatedMinutes())
		assert.Nil(t, update.Location())
	})

	t.Run("should carry 15 minute estimate for out_for_delivery", func(t *testing.T) {
		update, err := order.NewStatusUpdate(kernel.NewUUID(), kernel.NewUUID(), order.OutForDelivery, now)

		require.NoError(t, err)
		require.NotNil(t, update.EstimatedMinutes())
		assert.Equal(t, 15, *update.EstimatedMinutes())
	})

	t.Run("should not carry estimate for any other status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing, order.Cooking,
			order.QualityCheck, order.Packaging, order.ReadyForPickup,
			order.Delivered, order.Cancelled,
		} {
			update, err := order.NewStatusUpdate(kernel.NewUUID(), kernel.NewUUID(), status, now)

			require.NoError(t, err)
			assert.Nil(t, update.EstimatedMinutes(), "estimate on %s", status)
		}
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := order.NewStatusUpdate(kernel.NewUUID(), kernel.NewUUID(), order.Unknown, now)

		require.Error(t, err)
	})

	t.Run("should fail with zero timestamp", func(t *testing.T) {
		_, err := order.NewStatusUpdate(kernel.NewUUID(), kernel.NewUUID(), order.Pending, time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "timestamp")
	})
}

func TestNewLocationUpdate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	validPoint := func(t *testing.T) order.TrackingPoint {
		t.Helper()
		point, err := kernel.NewGeoPoint(40.7130, -74.0055)
		require.NoError(t, err)
		tp, err := order.NewTrackingPoint(point, "Moving towards destination", now)
		require.NoError(t, err)
		return tp
	}

	t.Run("should create location update without estimate", func(t *testing.T) {
		update, err := order.NewLocationUpdate(
			kernel.NewUUID(), kernel.NewUUID(), order.OutForDelivery,
			"Alex is getting closer to your location", validPoint(t), now)

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, update.Status())
		assert.Equal(t, "Alex is getting closer to your location", update.Message())
		assert.Nil(t, update.EstimatedMinutes())
		require.NotNil(t, update.Location())
		assert.Equal(t, "Moving towards destination", update.Location().Address())
	})

	t.Run("should fail with empty message", func(t *testing.T) {
		_, err := order.NewLocationUpdate(
			kernel.NewUUID(), kernel.NewUUID(), order.OutForDelivery, "", validPoint(t), now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "message")
	})

	t.Run("should fail with unconstructed tracking point", func(t *testing.T) {
		_, err := order.NewLocationUpdate(
			kernel.NewUUID(), kernel.NewUUID(), order.OutForDelivery, "ping", order.TrackingPoint{}, now)

		require.Error(t, err)
	})
}

func TestRestoreUpdate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should preserve the record exactly as written", func(t *testing.T) {
		estimate := 15
		update, err := order.RestoreUpdate(
			kernel.NewUUID(), kernel.NewUUID(), order.OutForDelivery,
			"Your order is on its way to you!", now, &estimate, nil)

		require.NoError(t, err)
		assert.Equal(t, "Your order is on its way to you!", update.Message())
		require.NotNil(t, update.EstimatedMinutes())
		assert.Equal(t, 15, *update.EstimatedMinutes())
	})

	t.Run("should not re-derive a message", func(t *testing.T) {
		update, err := order.RestoreUpdate(
			kernel.NewUUID(), kernel.NewUUID(), order.Confirmed, "legacy message", now, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, "legacy message", update.Message())
	})
}

func TestUpdate_Immutability(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should not expose internal estimate for mutation", func(t *testing.T) {
		update, err := order.NewStatusUpdate(kernel.NewUUID(), kernel.NewUUID(), order.OutForDelivery, now)
		require.NoError(t, err)

		estimate := update.EstimatedMinutes()
		*estimate = 999

		assert.Equal(t, 15, *update.EstimatedMinutes())
	})

	t.Run("should fail validation for zero value update", func(t *testing.T) {
		var update order.Update

		err := update.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrUpdateIsNotConstructed, err)
	})
}

func TestNewTrackingPoint(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	t.Run("should create tracking point with valid fields", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(40.7130, -74.0055)
		require.NoError(t, err)

		tp, err := order.NewTrackingPoint(point, "Moving towards destination", now)

		require.NoError(t, err)
		require.NoError(t, tp.Validate())
		assert.Equal(t, "Moving towards destination", tp.Address())
		assert.Equal(t, now, tp.RecordedAt())
	})

	t.Run("should fail with empty address", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(40.7130, -74.0055)
		require.NoError(t, err)

		_, err = order.NewTrackingPoint(point, "", now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "address")
	})

	t.Run("should fail with unconstructed point", func(t *testing.T) {
		_, err := order.NewTrackingPoint(kernel.GeoPoint{}, "somewhere", now)

		require.Error(t, err)
	})
}
