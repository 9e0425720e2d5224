package commands

import (
	"errors"

	"trix/internal/pkg/guard"
)

var (
	ErrRebroadcastPendingCommandIsNotConstructed = errors.New(
		"RebroadcastPendingCommand must be created via NewRebroadcastPendingCommand constructor",
	)
)

// RebroadcastPendingCommand triggers a fresh offer broadcast for every
// shipment still waiting for a driver. Issued periodically by the job
// scheduler; it carries no parameters.
type RebroadcastPendingCommand struct {
	guard guard.ConstructorGuard
}

// NewRebroadcastPendingCommand creates a rebroadcast trigger command.
func NewRebroadcastPendingCommand() RebroadcastPendingCommand {
	return RebroadcastPendingCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RebroadcastPendingCommand) Validate() error {
	return c.guard.Validate(ErrRebroadcastPendingCommandIsNotConstructed)
}
