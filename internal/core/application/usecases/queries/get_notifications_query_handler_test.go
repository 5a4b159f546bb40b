package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mealtrack/internal/core/application/usecases/queries"
	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockNotificationFeed implements ports.NotificationFeed for handler tests.
type MockNotificationFeed struct {
	mock.Mock
}

func (m *MockNotificationFeed) Publish(ctx context.Context, update *order.Update) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *MockNotificationFeed) List(ctx context.Context, limit int) ([]*order.Update, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Update), args.Error(1)
}

func (m *MockNotificationFeed) Acknowledge(ctx context.Context, updateID kernel.UUID) error {
	args := m.Called(ctx, updateID)
	return args.Error(0)
}

func (m *MockNotificationFeed) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func feedStatusUpdate(t *testing.T, status order.Status, at time.Time) *order.Update {
	t.Helper()
	update, err := order.NewStatusUpdate(kernel.NewUUID(), kernel.NewUUID(), status, at)
	require.NoError(t, err)
	return update
}

func TestGetNotificationsQueryHandler_Handle_MapsFeedEntries(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	newest := feedStatusUpdate(t, order.OutForDelivery, now.Add(time.Minute))
	oldest := feedStatusUpdate(t, order.Confirmed, now)

	feed := &MockNotificationFeed{}
	feed.On("List", ctx, 0).Return([]*order.Update{newest, oldest}, nil)
	handler := queries.NewGetNotificationsQueryHandler(feed)

	result, err := handler.Handle(ctx, queries.NewGetNotificationsQuery(0))

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.True(t, result[0].ID.IsEqual(newest.ID()))
	assert.Equal(t, order.OutForDelivery, result[0].Status)
	assert.Equal(t, "Your order is on its way to you!", result[0].Message)
	require.NotNil(t, result[0].EstimatedMinutes)
	assert.Equal(t, 15, *result[0].EstimatedMinutes)
	assert.True(t, result[1].ID.IsEqual(oldest.ID()))
	assert.Nil(t, result[1].EstimatedMinutes)
	feed.AssertExpectations(t)
}

func TestGetNotificationsQueryHandler_Handle_MapsLocationEntries(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	point, err := kernel.NewGeoPoint(40.7130, -74.0055)
	require.NoError(t, err)
	trackingPoint, err := order.NewTrackingPoint(point, "Moving towards destination", now)
	require.NoError(t, err)
	update, err := order.NewLocationUpdate(
		kernel.NewUUID(), kernel.NewUUID(), order.OutForDelivery,
		"Alex Rodriguez is getting closer to your location", trackingPoint, now)
	require.NoError(t, err)

	feed := &MockNotificationFeed{}
	feed.On("List", ctx, 0).Return([]*order.Update{update}, nil)
	handler := queries.NewGetNotificationsQueryHandler(feed)

	result, err := handler.Handle(ctx, queries.NewGetNotificationsQuery(0))

	require.NoError(t, err)
	require.Len(t, result, 1)
	require.NotNil(t, result[0].Location)
	assert.InDelta(t, 40.7130, result[0].Location.Latitude, 0.000001)
	assert.InDelta(t, -74.0055, result[0].Location.Longitude, 0.000001)
	assert.Equal(t, "Moving towards destination", result[0].Location.Address)
}

func TestGetNotificationsQueryHandler_Handle_PassesLimitThrough(t *testing.T) {
	ctx := t.Context()

	feed := &MockNotificationFeed{}
	feed.On("List", ctx, 25).Return([]*order.Update{}, nil)
	handler := queries.NewGetNotificationsQueryHandler(feed)

	result, err := handler.Handle(ctx, queries.NewGetNotificationsQuery(25))

	require.NoError(t, err)
	assert.Empty(t, result)
	feed.AssertExpectations(t)
}

func TestGetNotificationsQueryHandler_Handle_FeedError(t *testing.T) {
	ctx := t.Context()
	feedErr := errors.New("redis connection refused")

	feed := &MockNotificationFeed{}
	feed.On("List", ctx, 0).Return(nil, feedErr)
	handler := queries.NewGetNotificationsQueryHandler(feed)

	result, err := handler.Handle(ctx, queries.NewGetNotificationsQuery(0))

	require.Error(t, err)
	assert.ErrorIs(t, err, feedErr)
	assert.Nil(t, result)
}

func TestGetNotificationsQueryHandler_Handle_InvalidQuery_ReturnsError(t *testing.T) {
	handler := queries.NewGetNotificationsQueryHandler(&MockNotificationFeed{})

	result, err := handler.Handle(t.Context(), queries.GetNotificationsQuery{})

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetNotificationsQueryIsNotConstructed)
	assert.Nil(t, result)
}
