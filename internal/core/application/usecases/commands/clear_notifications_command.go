package commands

import (
	"errors"

	"mealtrack/internal/pkg/guard"
)

var ErrClearNotificationsCommandIsNotConstructed = errors.New(
	"ClearNotificationsCommand must be created via NewClearNotificationsCommand constructor",
)

// ClearNotificationsCommand represents a request to empty the notification
// feed. It carries no data.
type ClearNotificationsCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewClearNotificationsCommand creates a command to empty the feed.
func NewClearNotificationsCommand() (ClearNotificationsCommand, error) {
	return ClearNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClearNotificationsCommandIsNotConstructed if validation fails.
func (c ClearNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrClearNotificationsCommandIsNotConstructed)
}
