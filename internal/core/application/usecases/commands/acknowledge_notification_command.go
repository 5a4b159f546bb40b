package commands

import (
	"errors"

	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/pkg/guard"
)

var ErrAcknowledgeNotificationCommandIsNotConstructed = errors.New(
	"AcknowledgeNotificationCommand must be created via NewAcknowledgeNotificationCommand constructor",
)

// AcknowledgeNotificationCommand represents a request to dismiss a single
// entry from the notification feed.
type AcknowledgeNotificationCommand struct { //nolint:recvcheck //using for validation
	updateID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcknowledgeNotificationCommand creates a command to dismiss the feed
// entry with the given update id.
func NewAcknowledgeNotificationCommand(updateID kernel.UUID) (AcknowledgeNotificationCommand, error) {
	command := AcknowledgeNotificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setUpdateID(updateID); err != nil {
		return AcknowledgeNotificationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcknowledgeNotificationCommandIsNotConstructed if validation fails.
func (c AcknowledgeNotificationCommand) Validate() error {
	return c.guard.Validate(ErrAcknowledgeNotificationCommandIsNotConstructed)
}

// UpdateID returns the identifier of the feed entry to dismiss.
func (c AcknowledgeNotificationCommand) UpdateID() kernel.UUID {
	return c.updateID
}

func (c *AcknowledgeNotificationCommand) setUpdateID(updateID kernel.UUID) error {
	if err := updateID.Validate(); err != nil {
		return err
	}

	c.updateID = updateID
	return nil
}
