package commands

import (
	"context"
	"errors"
	"time"

	"mealtrack/internal/core/domain/model/order"
	"mealtrack/internal/core/ports"
	"mealtrack/internal/pkg/errs"
)

// Default driver details assigned when an order goes out for delivery and no
// driver has been set yet. Stands in for a real dispatch system.
const (
	defaultDriverName    = "Alex Rodriguez"
	defaultDriverPhone   = "+1-555-0134"
	defaultDriverVehicle = "Blue Honda Civic"
)

// AdvanceOrderCommandHandler handles the business logic for order progression.
//
// On a successful transition the appended update is published to the
// notification feed after the transaction commits, so the feed never shows a
// transition that was rolled back. When the order does not exist or is
// already terminal the command completes silently without changing anything.
//
// Example:
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory, feed)
//	cmd, _ := NewAdvanceOrderCommand(orderID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order progression failed: %w", err)
//	}
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	feed       ports.NotificationFeed
}

// NewAdvanceOrderCommandHandler creates a handler for order progression.
// Requires an OrderUoWFactory for transactional persistence and the
// notification feed to publish transitions to.
func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	feed ports.NotificationFeed,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		feed:       feed,
	}
}

// Handle processes the order progression command.
// Moves the order exactly one step forward, assigns the default driver on the
// transition into OutForDelivery, persists the change, and publishes the
// transition update to the feed.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	update, err := aggregate.Advance(time.Now().UTC())
	if err != nil {
		return err
	}
	if update == nil {
		// Terminal order, nothing to advance.
		return nil
	}

	if update.Status() == order.OutForDelivery && aggregate.Driver() == nil {
		driver, err := order.NewDriver(defaultDriverName, defaultDriverPhone, defaultDriverVehicle)
		if err != nil {
			return err
		}
		if err := aggregate.AssignDriver(driver); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.feed.Publish(ctx, update)
}
