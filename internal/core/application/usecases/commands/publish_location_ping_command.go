package commands

import (
	"errors"

	"mealtrack/internal/pkg/guard"
)

var ErrPublishLocationPingCommandIsNotConstructed = errors.New(
	"PublishLocationPingCommand must be created via NewPublishLocationPingCommand constructor",
)

// PublishLocationPingCommand represents one tick of the live tracking
// simulation. It carries no data: the handler resolves the active order from
// the session store.
type PublishLocationPingCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewPublishLocationPingCommand creates a command for a simulation tick.
func NewPublishLocationPingCommand() (PublishLocationPingCommand, error) {
	return PublishLocationPingCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPublishLocationPingCommandIsNotConstructed if validation fails.
func (c PublishLocationPingCommand) Validate() error {
	return c.guard.Validate(ErrPublishLocationPingCommandIsNotConstructed)
}
