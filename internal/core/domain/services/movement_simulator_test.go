package services_test

import (
	"math/rand"
	"testing"
	"time"

	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/core/domain/model/order"
	"mealtrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrackedOrder(t *testing.T) *order.Order {
	t.Helper()

	point, err := kernel.NewGeoPoint(40.7128, -74.0060)
	require.NoError(t, err)
	address, err := order.NewAddress("482 Elm Street", "Springfield", "IL", "62704", point)
	require.NoError(t, err)
	item, err := order.NewItem("Teriyaki Chicken Bowl", 1, 14.95, "")
	require.NoError(t, err)

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tracked, err := order.NewOrder(
		kernel.NewUUID(), []order.Item{item}, 14.95, address, createdAt, createdAt.Add(45*time.Minute))
	require.NoError(t, err)

	return tracked
}

// advanceTo walks the order forward until it reaches the target status.
func advanceTo(t *testing.T, tracked *order.Order, target order.Status, now time.Time) {
	t.Helper()
	for tracked.Status() != target {
		update, err := tracked.Advance(now)
		require.NoError(t, err)
		require.NotNil(t, update)
	}
}

func recordStartingPoint(t *testing.T, tracked *order.Order, now time.Time) order.TrackingPoint {
	t.Helper()

	point, err := kernel.NewGeoPoint(40.7130, -74.0055)
	require.NoError(t, err)
	start, err := order.NewTrackingPoint(point, "24 Kitchen Lane", now)
	require.NoError(t, err)
	_, err = tracked.RecordLocation(start, "Driver picked up your order", now)
	require.NoError(t, err)

	return start
}

func TestMovementSimulator_NextLocation(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 40, 0, 0, time.UTC)

	t.Run("should perturb the last known location", func(t *testing.T) {
		tracked := newTrackedOrder(t)
		advanceTo(t, tracked, order.OutForDelivery, now)
		start := recordStartingPoint(t, tracked, now)
		simulator := services.NewMovementSimulatorFromSource(rand.NewSource(1))

		update, err := simulator.NextLocation(tracked, now.Add(30*time.Second))

		require.NoError(t, err)
		require.NotNil(t, update)
		require.NotNil(t, update.Location())
		moved := update.Location().Point()
		assert.InDelta(t, start.Point().Latitude(), moved.Latitude(), 0.001)
		assert.InDelta(t, start.Point().Longitude(), moved.Longitude(), 0.001)
		equal, err := moved.IsEqual(start.Point())
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("should report the placeholder address and repeat the status", func(t *testing.T) {
		tracked := newTrackedOrder(t)
		advanceTo(t, tracked, order.OutForDelivery, now)
		recordStartingPoint(t, tracked, now)
		simulator := services.NewMovementSimulatorFromSource(rand.NewSource(1))

		update, err := simulator.NextLocation(tracked, now.Add(30*time.Second))

		require.NoError(t, err)
		assert.Equal(t, "Moving towards destination", update.Location().Address())
		assert.Equal(t, order.OutForDelivery, update.Status())
		assert.Nil(t, update.EstimatedMinutes())
	})

	t.Run("should name the assigned driver in the message", func(t *testing.T) {
		tracked := newTrackedOrder(t)
		advanceTo(t, tracked, order.OutForDelivery, now)
		driver, err := order.NewDriver("Alex Rodriguez", "+1-555-0134", "Blue Honda Civic")
		require.NoError(t, err)
		require.NoError(t, tracked.AssignDriver(driver))
		recordStartingPoint(t, tracked, now)
		simulator := services.NewMovementSimulatorFromSource(rand.NewSource(1))

		update, err := simulator.NextLocation(tracked, now.Add(30*time.Second))

		require.NoError(t, err)
		assert.Equal(t, "Alex Rodriguez is getting closer to your location", update.Message())
	})

	t.Run("should fall back to a generic driver name", func(t *testing.T) {
		tracked := newTrackedOrder(t)
		advanceTo(t, tracked, order.OutForDelivery, now)
		recordStartingPoint(t, tracked, now)
		simulator := services.NewMovementSimulatorFromSource(rand.NewSource(1))

		update, err := simulator.NextLocation(tracked, now.Add(30*time.Second))

		require.NoError(t, err)
		assert.Equal(t, "Your driver is getting closer to your location", update.Message())
	})

	t.Run("should return ErrNoPriorLocation before any position is recorded", func(t *testing.T) {
		tracked := newTrackedOrder(t)
		simulator := services.NewMovementSimulatorFromSource(rand.NewSource(1))

		update, err := simulator.NextLocation(tracked, now)

		require.ErrorIs(t, err, services.ErrNoPriorLocation)
		assert.Nil(t, update)
	})

	t.Run("should produce nothing for a delivered order", func(t *testing.T) {
		tracked := newTrackedOrder(t)
		advanceTo(t, tracked, order.OutForDelivery, now)
		recordStartingPoint(t, tracked, now)
		advanceTo(t, tracked, order.Delivered, now)
		simulator := services.NewMovementSimulatorFromSource(rand.NewSource(1))

		update, err := simulator.NextLocation(tracked, now.Add(30*time.Second))

		require.NoError(t, err)
		assert.Nil(t, update)
	})

	t.Run("should append the update to the order history", func(t *testing.T) {
		tracked := newTrackedOrder(t)
		advanceTo(t, tracked, order.OutForDelivery, now)
		recordStartingPoint(t, tracked, now)
		before := len(tracked.Updates())
		simulator := services.NewMovementSimulatorFromSource(rand.NewSource(1))

		update, err := simulator.NextLocation(tracked, now.Add(30*time.Second))

		require.NoError(t, err)
		history := tracked.Updates()
		require.Len(t, history, before+1)
		assert.True(t, history[len(history)-1].IsEqual(update))
	})

	t.Run("should chain ticks from the previously simulated position", func(t *testing.T) {
		tracked := newTrackedOrder(t)
		advanceTo(t, tracked, order.OutForDelivery, now)
		recordStartingPoint(t, tracked, now)
		simulator := services.NewMovementSimulatorFromSource(rand.NewSource(7))

		first, err := simulator.NextLocation(tracked, now.Add(30*time.Second))
		require.NoError(t, err)
		second, err := simulator.NextLocation(tracked, now.Add(60*time.Second))
		require.NoError(t, err)

		firstPoint := first.Location().Point()
		secondPoint := second.Location().Point()
		assert.InDelta(t, firstPoint.Latitude(), secondPoint.Latitude(), 0.001)
		assert.InDelta(t, firstPoint.Longitude(), secondPoint.Longitude(), 0.001)
	})
}
