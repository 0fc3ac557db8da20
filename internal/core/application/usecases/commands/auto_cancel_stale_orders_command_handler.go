package commands

import (
	"context"
	"errors"
	"fmt"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/core/ports"
)

// AutoCancelStaleOrdersCommandHandler cancels orders unconfirmed past the
// auto-cancel threshold. Cancellations commit in one transaction through
// the regular lifecycle guard; afterwards each owning user is notified
// and the flattened order record is handed to the export sink. Once an
// order leaves New the sweep no longer sees it, so reruns are idempotent.
type AutoCancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	directory  ports.UserDirectory
	notifier   ports.NotificationSink
	exporter   ports.ExportSink
	settings   Settings
}

// NewAutoCancelStaleOrdersCommandHandler creates a handler for auto-cancel sweeps.
func NewAutoCancelStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	directory ports.UserDirectory,
	notifier ports.NotificationSink,
	exporter ports.ExportSink,
	settings Settings,
) AutoCancelStaleOrdersCommandHandler {
	return AutoCancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		notifier:   notifier,
		exporter:   exporter,
		settings:   settings,
	}
}

// Handle runs one auto-cancel sweep and returns the number of orders
// cancelled. Notification and export failures are joined and returned
// after the sweep; the cancellations themselves are already committed.
func (h *AutoCancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd AutoCancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	if err := h.settings.Validate(); err != nil {
		return 0, err
	}

	now := h.settings.Now()
	comment := fmt.Sprintf("auto-cancelled after %s without confirmation", h.settings.AutoCancelAfter)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	stale, err := orderRepo.GetStale(ctx, now.Add(-h.settings.AutoCancelAfter))
	if err != nil {
		return 0, err
	}

	cancelled := make([]*order.Order, 0, len(stale))
	for _, candidate := range stale {
		// re-read under a row lock: a confirm racing the sweep may have
		// already moved the order out of New
		aggregate, getErr := orderRepo.GetForUpdate(ctx, candidate.ID())
		if getErr != nil {
			return 0, getErr
		}
		if aggregate.Status() != order.New {
			continue
		}

		oldStatus := aggregate.Status()

		if err = aggregate.Cancel(); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}

		entry, entryErr := order.NewStatusChangeLogEntry(
			kernel.NewUUID(),
			aggregate.ID(),
			oldStatus,
			aggregate.Status(),
			nil,
			comment,
			now,
		)
		if entryErr != nil {
			return 0, entryErr
		}
		if err = orderRepo.AppendLog(ctx, &entry); err != nil {
			return 0, err
		}
		cancelled = append(cancelled, aggregate)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	var sideErrs []error
	for _, aggregate := range cancelled {
		if notifyErr := h.notifyUser(ctx, aggregate); notifyErr != nil {
			sideErrs = append(sideErrs, notifyErr)
		}
		if exportErr := h.exporter.Export(ctx, exportRecord(aggregate)); exportErr != nil {
			sideErrs = append(sideErrs, exportErr)
		}
	}

	return len(cancelled), errors.Join(sideErrs...)
}

func (h *AutoCancelStaleOrdersCommandHandler) notifyUser(ctx context.Context, aggregate *order.Order) error {
	contact, err := h.directory.UserContact(ctx, aggregate.UserID())
	if err != nil {
		return err
	}

	text := fmt.Sprintf(
		"Your order %s was cancelled because it stayed unconfirmed for %s",
		aggregate.ID(),
		h.settings.AutoCancelAfter,
	)
	return h.notifier.Send(ctx, contact, text)
}

// exportRecord flattens an order aggregate for the export sink.
func exportRecord(aggregate *order.Order) ports.OrderExportRecord {
	record := ports.OrderExportRecord{
		OrderID:      aggregate.ID().String(),
		UserID:       aggregate.UserID().String(),
		QtyA:         aggregate.QtyA(),
		QtyB:         aggregate.QtyB(),
		TotalQty:     aggregate.TotalQty(),
		DeliveryDate: aggregate.DeliveryDate().String(),
		Status:       aggregate.Status().String(),
		Comment:      aggregate.Comment(),
		CreatedAt:    aggregate.CreatedAt(),
	}
	if addressID := aggregate.AddressID(); addressID != nil {
		record.AddressID = addressID.String()
	}
	return record
}
