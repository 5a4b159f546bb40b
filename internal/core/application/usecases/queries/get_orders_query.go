package queries

import (
	"errors"
	"time"

	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/core/domain/model/order"
	"mealtrack/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves all orders for the order list screen,
// newest first.
//
// Example:
//
//	query := NewGetOrdersQuery()
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("Order %s is %s (%d%%)\n", o.ID, o.Status, o.Progress)
//	}
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query; filtering and pagination happen client-side.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse is one row of the order list: identity, progression
// state with its display attributes, and the fixed delivery estimate.
type GetOrdersQueryResponse struct {
	ID                    kernel.UUID
	Status                order.Status
	StatusMessage         string
	Progress              int
	Color                 string
	TotalAmount           float64
	CreatedAt             time.Time
	EstimatedDeliveryTime time.Time
}
