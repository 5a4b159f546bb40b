package queries

import (
	"errors"
	"time"

	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/core/domain/model/order"
	"mealtrack/internal/pkg/guard"
)

var ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
	"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
)

// GetOrderTrackingQuery retrieves the full tracking view of a single order:
// its current progression state, the formatted delivery estimate, the
// assigned driver, and the complete update history.
type GetOrderTrackingQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTrackingQuery creates a query for the given order's tracking view.
// Validates that the order ID is a constructed UUID.
func NewGetOrderTrackingQuery(orderID kernel.UUID) (GetOrderTrackingQuery, error) {
	query := GetOrderTrackingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return GetOrderTrackingQuery{}, err
	}
	query.orderID = orderID

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderTrackingQueryIsNotConstructed if validation fails.
func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to inspect.
func (q GetOrderTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TrackingLocationResponse is the position attached to a history entry.
type TrackingLocationResponse struct {
	Latitude   float64
	Longitude  float64
	Address    string
	RecordedAt time.Time
}

// TrackingUpdateResponse is one entry of the order history, oldest first.
type TrackingUpdateResponse struct {
	ID               kernel.UUID
	Status           order.Status
	Message          string
	Timestamp        time.Time
	EstimatedMinutes *int
	Location         *TrackingLocationResponse
}

// TrackingDriverResponse describes the assigned driver, when present.
type TrackingDriverResponse struct {
	Name    string
	Phone   string
	Vehicle string
}

// GetOrderTrackingQueryResponse is the full tracking view of an order.
type GetOrderTrackingQueryResponse struct {
	OrderID               kernel.UUID
	Status                order.Status
	StatusMessage         string
	Progress              int
	Color                 string
	ETA                   string
	TotalAmount           float64
	CreatedAt             time.Time
	EstimatedDeliveryTime time.Time
	Driver                *TrackingDriverResponse
	Updates               []TrackingUpdateResponse
}
