package commands

import (
	"context"
	"errors"
	"time"

	"mealtrack/internal/core/ports"
	"mealtrack/internal/pkg/errs"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
// Mirrors the progression handler: the cancellation update is published to
// the feed after commit, and unknown or already-terminal orders complete
// silently.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	feed       ports.NotificationFeed
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	feed ports.NotificationFeed,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		feed:       feed,
	}
}

// Handle processes the cancellation command.
// Moves the order to Cancelled, persists the change, and publishes the
// cancellation update to the feed.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	update, err := aggregate.Cancel(time.Now().UTC())
	if err != nil {
		return err
	}
	if update == nil {
		// Already terminal, nothing to cancel.
		return nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.feed.Publish(ctx, update)
}
