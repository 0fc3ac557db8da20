package commands_test

import (
	"testing"

	"waterdelivery/internal/core/application/usecases/commands"
	"waterdelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemindStaleOrdersCommandHandler_Handle_NotifiesEveryOperator(t *testing.T) {
	ctx := t.Context()
	settings := testSettings()
	first := newPendingOrder(t)
	second := newPendingOrder(t)
	threshold := settings.Now().Add(-settings.ReminderAfter)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetStale", ctx, threshold).Return([]*order.Order{first, second}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	directory := new(MockUserDirectory)
	directory.On("OperatorContacts", ctx).Return([]string{"op-1", "op-2"}, nil).Once()

	notifier := new(MockNotificationSink)
	notifier.On("Send", ctx, "op-1", mock.AnythingOfType("string")).Return(nil).Twice()
	notifier.On("Send", ctx, "op-2", mock.AnythingOfType("string")).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemindStaleOrdersCommandHandler(factory, directory, notifier, settings)
	count, err := h.Handle(ctx, commands.NewRemindStaleOrdersCommand())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	orderRepo.AssertExpectations(t)
	directory.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemindStaleOrdersCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()
	settings := testSettings()

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetStale", ctx, mock.AnythingOfType("time.Time")).Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	directory := new(MockUserDirectory)
	notifier := new(MockNotificationSink)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemindStaleOrdersCommandHandler(factory, directory, notifier, settings)
	count, err := h.Handle(ctx, commands.NewRemindStaleOrdersCommand())
	require.NoError(t, err)
	assert.Zero(t, count)
	directory.AssertNotCalled(t, "OperatorContacts", mock.Anything)
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}
