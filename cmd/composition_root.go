package cmd

import (
	"log/slog"

	"waterdelivery/internal/adapters/out/export"
	"waterdelivery/internal/adapters/out/notify"
	"waterdelivery/internal/adapters/out/postgres"
	"waterdelivery/internal/core/application/usecases/commands"
	"waterdelivery/internal/core/application/usecases/queries"
	"waterdelivery/internal/core/domain/services"
	"waterdelivery/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, settings, and use case handlers.
// Handlers are created per call; they are cheap and stateless.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	settings   commands.Settings
	directory  ports.UserDirectory
	notifier   ports.NotificationSink
	exporter   ports.ExportSink
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from the config and an open
// database handle.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	settings := commands.DefaultSettings()
	settings.Slot = services.SlotFinderConfig{
		GlobalDailyLimit: config.GlobalDailyLimit,
		HorizonDays:      config.HorizonDays,
		FallbackZone:     config.FallbackZone,
		DefaultZoneLimit: config.DefaultZoneLimit,
	}
	settings.CutoffHour = config.CutoffHour
	settings.DuplicateWindow = config.DuplicateWindow
	settings.ReminderAfter = config.ReminderAfter
	settings.AutoCancelAfter = config.AutoCancelAfter
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	directory, err := notify.NewStaticUserDirectory(config.OperatorContacts)
	if err != nil {
		return nil, err
	}
	notifier, err := notify.NewLogNotificationSink(logger)
	if err != nil {
		return nil, err
	}
	exporter, err := export.NewLogExportSink(logger)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		settings:   settings,
		directory:  directory,
		notifier:   notifier,
		exporter:   exporter,
		logger:     logger,
	}, nil
}

// Logger returns the application logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// UnitOfWorkFactory exposes the shared transactional factory.
func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return c.uowFactory
}

func (c *CompositionRoot) allocationUoWFactory() commands.AllocationUoWFactory {
	return FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.allocationUoWFactory(), c.settings)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.allocationUoWFactory(), c.settings)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory(), c.settings)
}

func (c *CompositionRoot) CreateRemindStaleOrdersCommandHandler() commands.RemindStaleOrdersCommandHandler {
	return commands.NewRemindStaleOrdersCommandHandler(
		c.orderUoWFactory(), c.directory, c.notifier, c.settings,
	)
}

func (c *CompositionRoot) CreateAutoCancelStaleOrdersCommandHandler() commands.AutoCancelStaleOrdersCommandHandler {
	return commands.NewAutoCancelStaleOrdersCommandHandler(
		c.orderUoWFactory(), c.directory, c.notifier, c.exporter, c.settings,
	)
}

func (c *CompositionRoot) CreateListNewOrdersQueryHandler() queries.ListNewOrdersQueryHandler {
	return queries.NewListNewOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStaleOrdersQueryHandler() queries.ListStaleOrdersQueryHandler {
	return queries.NewListStaleOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindSlotQueryHandler() queries.FindSlotQueryHandler {
	return queries.NewFindSlotQueryHandler(c.uowFactory, c.settings.Slot, c.settings.CutoffHour)
}

type FuncAllocationUoWFactory func() commands.AllocationUoW

func (f FuncAllocationUoWFactory) Create() commands.AllocationUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
