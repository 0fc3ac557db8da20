package commands_test

import (
	"context"
	"time"

	"waterdelivery/internal/core/application/usecases/commands"
	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/core/domain/model/schedule"
	"waterdelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AppendLog(ctx context.Context, entry *order.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockOrderRepository) FindDuplicate(
	ctx context.Context,
	userID kernel.UUID,
	addressID kernel.UUID,
	qtyA int,
	qtyB int,
	since time.Time,
) (*order.Order, error) {
	args := m.Called(ctx, userID, addressID, qtyA, qtyB, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetStale(ctx context.Context, threshold time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ConsumedForDate(ctx context.Context, date kernel.Day) (int, error) {
	args := m.Called(ctx, date)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) ConsumedForZone(ctx context.Context, date kernel.Day, zone string) (int, error) {
	args := m.Called(ctx, date, zone)
	return args.Int(0), args.Error(1)
}

type MockScheduleRepository struct{ mock.Mock }

func (m *MockScheduleRepository) AddZoneCapacity(ctx context.Context, capacity *schedule.ZoneCapacity) error {
	args := m.Called(ctx, capacity)
	return args.Error(0)
}

func (m *MockScheduleRepository) UpdateZoneCapacity(ctx context.Context, capacity *schedule.ZoneCapacity) error {
	args := m.Called(ctx, capacity)
	return args.Error(0)
}

func (m *MockScheduleRepository) MaxPerDay(ctx context.Context, zone string) (int, bool, error) {
	args := m.Called(ctx, zone)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockScheduleRepository) CountZoneCapacities(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScheduleRepository) AddHoliday(ctx context.Context, holiday *schedule.Holiday) error {
	args := m.Called(ctx, holiday)
	return args.Error(0)
}

func (m *MockScheduleRepository) IsHoliday(ctx context.Context, date kernel.Day) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) GetZone(ctx context.Context, addressID kernel.UUID) (string, error) {
	args := m.Called(ctx, addressID)
	return args.String(0), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAllocationUoW struct{ mock.Mock }

func (m *MockAllocationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAllocationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAllocationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAllocationUoW) LockCapacity(ctx context.Context, zone string) error {
	args := m.Called(ctx, zone)
	return args.Error(0)
}

func (m *MockAllocationUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockAllocationUoW) ScheduleRepository() ports.ScheduleRepository {
	args := m.Called()
	return args.Get(0).(ports.ScheduleRepository)
}

func (m *MockAllocationUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}

type MockAllocationUoWFactory struct{ mock.Mock }

func (m *MockAllocationUoWFactory) Create() commands.AllocationUoW {
	args := m.Called()
	return args.Get(0).(commands.AllocationUoW)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) Send(ctx context.Context, recipient string, text string) error {
	args := m.Called(ctx, recipient, text)
	return args.Error(0)
}

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) OperatorContacts(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserDirectory) UserContact(ctx context.Context, userID kernel.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

type MockExportSink struct{ mock.Mock }

func (m *MockExportSink) Export(ctx context.Context, record ports.OrderExportRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
