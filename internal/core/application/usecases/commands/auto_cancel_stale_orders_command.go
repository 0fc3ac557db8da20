package commands

import (
	"errors"

	"waterdelivery/internal/pkg/guard"
)

var ErrAutoCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"AutoCancelStaleOrdersCommand must be created via NewAutoCancelStaleOrdersCommand constructor",
)

// AutoCancelStaleOrdersCommand requests a cancellation sweep over orders
// unconfirmed past the auto-cancel threshold from the handler's settings.
type AutoCancelStaleOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAutoCancelStaleOrdersCommand creates an auto-cancel sweep command.
func NewAutoCancelStaleOrdersCommand() AutoCancelStaleOrdersCommand {
	return AutoCancelStaleOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c AutoCancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAutoCancelStaleOrdersCommandIsNotConstructed)
}
