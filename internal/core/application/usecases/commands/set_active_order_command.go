package commands

import (
	"errors"

	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/pkg/guard"
)

var ErrSetActiveOrderCommandIsNotConstructed = errors.New(
	"SetActiveOrderCommand must be created via NewSetActiveOrderCommand constructor",
)

// SetActiveOrderCommand represents a request to point the tracking screen at
// the given order. The live tracking simulation only produces location pings
// for the active order.
type SetActiveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetActiveOrderCommand creates a command to select the tracked order.
// Validates that the order ID is a constructed UUID.
func NewSetActiveOrderCommand(orderID kernel.UUID) (SetActiveOrderCommand, error) {
	command := SetActiveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return SetActiveOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetActiveOrderCommandIsNotConstructed if validation fails.
func (c SetActiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrSetActiveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to track.
func (c SetActiveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *SetActiveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
