package commands

import (
	"errors"

	"waterdelivery/internal/pkg/guard"
)

var ErrRemindStaleOrdersCommandIsNotConstructed = errors.New(
	"RemindStaleOrdersCommand must be created via NewRemindStaleOrdersCommand constructor",
)

// RemindStaleOrdersCommand requests a reminder sweep over orders that
// have sat unconfirmed past the reminder threshold. It carries no
// parameters; the threshold comes from the handler's settings.
type RemindStaleOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewRemindStaleOrdersCommand creates a reminder sweep command.
func NewRemindStaleOrdersCommand() RemindStaleOrdersCommand {
	return RemindStaleOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RemindStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRemindStaleOrdersCommandIsNotConstructed)
}
