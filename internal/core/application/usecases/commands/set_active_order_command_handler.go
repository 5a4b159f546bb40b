package commands

import (
	"context"
	"errors"

	"mealtrack/internal/pkg/errs"
)

// SetActiveOrderCommandHandler handles selection of the tracked order.
// The selection is verified against storage: pointing the tracker at an
// order that does not exist clears the selection instead of failing, so a
// stale client cannot wedge the simulation.
type SetActiveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	sessions   ActiveOrderSessions
}

// NewSetActiveOrderCommandHandler creates a handler for tracked-order selection.
func NewSetActiveOrderCommandHandler(
	uowFactory OrderUoWFactory,
	sessions ActiveOrderSessions,
) SetActiveOrderCommandHandler {
	return SetActiveOrderCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
	}
}

// Handle processes the selection command.
// Looks the order up and records it as the tracked order; an unknown id
// clears the current selection without error.
func (h *SetActiveOrderCommandHandler) Handle(ctx context.Context, cmd SetActiveOrderCommand) error {
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.sessions.Clear()
			return nil
		}
		return err
	}

	h.sessions.Set(cmd.OrderID())
	return nil
}
