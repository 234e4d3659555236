package commands_test

import (
	"testing"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkOrderReadyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := buildOrderInStatus(t, order.PreparedComplete, false)
	cmd, _ := commands.NewMarkOrderReadyCommand(o.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderReadyCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.ReadyForDispatch, o.Status())
	uow.AssertExpectations(t)
}

func TestMarkOrderReadyCommandHandler_Handle_NotFullyPicked(t *testing.T) {
	ctx := t.Context()
	o := buildOrderInStatus(t, order.PreparedIncomplete, false)
	cmd, _ := commands.NewMarkOrderReadyCommand(o.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderReadyCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, order.PreparedIncomplete, o.Status())
	uow.AssertExpectations(t)
}
