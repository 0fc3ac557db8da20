package commands

import (
	"context"
	"errors"
	"fmt"

	"waterdelivery/internal/core/ports"
)

// RemindStaleOrdersCommandHandler notifies every operator contact about
// each order still unconfirmed past the reminder threshold. It mutates no
// state, so running it repeatedly only repeats the reminders.
type RemindStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	directory  ports.UserDirectory
	notifier   ports.NotificationSink
	settings   Settings
}

// NewRemindStaleOrdersCommandHandler creates a handler for reminder sweeps.
func NewRemindStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	directory ports.UserDirectory,
	notifier ports.NotificationSink,
	settings Settings,
) RemindStaleOrdersCommandHandler {
	return RemindStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		notifier:   notifier,
		settings:   settings,
	}
}

// Handle runs one reminder sweep and returns the number of stale orders
// found. Notification failures are joined and returned after the whole
// sweep so one unreachable contact does not silence the rest.
func (h *RemindStaleOrdersCommandHandler) Handle(ctx context.Context, cmd RemindStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	if err := h.settings.Validate(); err != nil {
		return 0, err
	}

	now := h.settings.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stale, err := uow.OrderRepository().GetStale(ctx, now.Add(-h.settings.ReminderAfter))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if len(stale) == 0 {
		return 0, nil
	}

	contacts, err := h.directory.OperatorContacts(ctx)
	if err != nil {
		return 0, err
	}

	var sendErrs []error
	for _, aggregate := range stale {
		text := fmt.Sprintf(
			"Order %s is still unconfirmed since %s: %d bottles for %s",
			aggregate.ID(),
			aggregate.CreatedAt().Format("2006-01-02 15:04"),
			aggregate.TotalQty(),
			aggregate.DeliveryDate(),
		)
		for _, contact := range contacts {
			if sendErr := h.notifier.Send(ctx, contact, text); sendErr != nil {
				sendErrs = append(sendErrs, sendErr)
			}
		}
	}

	return len(stale), errors.Join(sendErrs...)
}
