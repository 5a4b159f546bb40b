package ports

import (
	"context"

	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing and retrieving orders together with their
// append-only update history. List-style reads go through read projections
// instead of the aggregate repository.
type OrderRepository interface {
	// Add persists a new order aggregate to storage, including its seed
	// update. The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Updates already
	// present in storage are left untouched; new history records are appended.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its full update history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
