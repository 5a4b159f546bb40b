package queries

import (
	"context"
	"time"

	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves the order list from the database.
// Reads straight off the orders table, bypassing aggregate hydration: the
// list screen needs no history.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query := NewGetOrdersQuery()
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders, newest first.
// Each row carries the status together with its display attributes
// (message, progress percent, color) derived from the status table.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			total_amount,
			created_at,
			estimated_delivery_time
		FROM orders
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var status string
		var totalAmount float64
		var createdAt, estimatedDeliveryTime time.Time

		err = rows.Scan(
			&id,
			&status,
			&totalAmount,
			&createdAt,
			&estimatedDeliveryTime,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orderStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}

		orders = append(orders, GetOrdersQueryResponse{
			ID:                    orderID,
			Status:                orderStatus,
			StatusMessage:         orderStatus.Message(),
			Progress:              orderStatus.Progress(),
			Color:                 orderStatus.Color(),
			TotalAmount:           totalAmount,
			CreatedAt:             createdAt,
			EstimatedDeliveryTime: estimatedDeliveryTime,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
