package commands

import (
	"context"
	"time"

	"mealtrack/internal/core/domain/model/order"
)

// defaultDeliveryWindow is the delivery estimate applied at creation time.
// The estimate is fixed once and never recomputed as the order advances.
const defaultDeliveryWindow = 45 * time.Minute

// CreateOrderCommandHandler handles the business logic for placing orders.
// Creates new orders in Pending status with the delivery estimate fixed at
// creation time and the Pending update seeded into the history.
//
// The seed update is part of the order history only; it is not published to
// the notification feed.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID := kernel.NewUUID()
//	cmd, _ := NewCreateOrderCommand(orderID, items, 29.90, address)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending confirmation
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Creates the order in Pending status with estimatedDeliveryTime set to
// creation time plus the default delivery window.
// Uses a transaction to ensure the order is properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.Items(), cmd.TotalAmount(), cmd.Address(), now, now.Add(defaultDeliveryWindow))
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
