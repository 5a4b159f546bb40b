package commands

import (
	"context"
	"errors"
	"time"

	"mealtrack/internal/core/domain/services"
	"mealtrack/internal/core/ports"
	"mealtrack/internal/pkg/errs"
)

// PublishLocationPingCommandHandler drives one tick of the live tracking
// simulation: it resolves the active order, lets the movement simulator
// perturb its last known location, persists the appended location update,
// and publishes it to the notification feed.
//
// The tick degrades to a silent no-op whenever there is nothing to simulate:
// no active order, the order was deleted, it is terminal, or it has no prior
// location to move from.
type PublishLocationPingCommandHandler struct {
	uowFactory OrderUoWFactory
	feed       ports.NotificationFeed
	sessions   ActiveOrderSessions
	simulator  services.MovementSimulator
}

// NewPublishLocationPingCommandHandler creates a handler for simulation ticks.
func NewPublishLocationPingCommandHandler(
	uowFactory OrderUoWFactory,
	feed ports.NotificationFeed,
	sessions ActiveOrderSessions,
	simulator services.MovementSimulator,
) PublishLocationPingCommandHandler {
	return PublishLocationPingCommandHandler{
		uowFactory: uowFactory,
		feed:       feed,
		sessions:   sessions,
		simulator:  simulator,
	}
}

// Handle processes one simulation tick for the active order, if any.
func (h *PublishLocationPingCommandHandler) Handle(ctx context.Context, cmd PublishLocationPingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orderID, ok := h.sessions.Get()
	if !ok {
		return nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	update, err := h.simulator.NextLocation(aggregate, time.Now().UTC())
	if err != nil {
		if errors.Is(err, services.ErrNoPriorLocation) {
			return nil
		}
		return err
	}
	if update == nil {
		// Terminal order, the simulation has nothing to move.
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
