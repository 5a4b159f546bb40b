package queries

import (
	"context"
	"time"

	"mealtrack/internal/core/domain/model/order"
	"mealtrack/internal/core/ports"
)

// GetOrderTrackingQueryHandler builds the tracking view of a single order.
// Hydrates the full aggregate through the repository: the tracking screen
// renders the complete history, so there is nothing to gain from a thinner
// read path.
type GetOrderTrackingQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrderTrackingQueryHandler creates a handler for tracking view queries.
func NewGetOrderTrackingQueryHandler(orderRepo ports.OrderRepository) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{orderRepo: orderRepo}
}

// Handle executes the query and formats the tracking view.
// The ETA is rendered against the current clock; the underlying estimate is
// the one fixed at order creation. Returns the repository's not-found error
// unchanged when the order does not exist.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	aggregate, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	status := aggregate.Status()
	response := GetOrderTrackingQueryResponse{
		OrderID:               aggregate.ID(),
		Status:                status,
		StatusMessage:         status.Message(),
		Progress:              status.Progress(),
		Color:                 status.Color(),
		ETA:                   order.FormatETA(status, aggregate.EstimatedDeliveryTime(), time.Now().UTC()),
		TotalAmount:           aggregate.TotalAmount(),
		CreatedAt:             aggregate.CreatedAt(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
	}

	if driver := aggregate.Driver(); driver != nil {
		response.Driver = &TrackingDriverResponse{
			Name:    driver.Name(),
			Phone:   driver.Phone(),
			Vehicle: driver.Vehicle(),
		}
	}

	updates := aggregate.Updates()
	response.Updates = make([]TrackingUpdateResponse, 0, len(updates))
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
		response.Updates = append(response.Updates, entry)
	}

	return response, nil
}
