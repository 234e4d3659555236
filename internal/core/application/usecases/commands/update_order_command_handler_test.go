package commands_test

import (
	"testing"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existingClient := buildClient(t)
	o := buildOrderInStatus(t, order.PreparedIncomplete, false)
	cmd, _ := commands.NewUpdateOrderCommand(
		o.ID(), existingClient.ID(), testDeliveryDate().AddDate(0, 0, 1), "cambió la fecha", orderItemInputs(t))

	orderRepo := new(MockOrderRepository)
	clientRepo := new(MockClientRepository)
	uow := new(MockOrderIntakeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", mock.Anything, existingClient.ID()).Return(existingClient, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "cambió la fecha", o.Notes())
	assert.True(t, o.ClientID().IsEqual(existingClient.ID()))
	// replacing items resets the untouched checklist back to pending
	assert.Equal(t, order.Pending, o.Status())
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ClosedOrderIsNotEditable(t *testing.T) {
	ctx := t.Context()
	existingClient := buildClient(t)
	o := buildOrderInStatus(t, order.Remitted, false)
	cmd, _ := commands.NewUpdateOrderCommand(
		o.ID(), existingClient.ID(), testDeliveryDate(), "", orderItemInputs(t))

	orderRepo := new(MockOrderRepository)
	clientRepo := new(MockClientRepository)
	uow := new(MockOrderIntakeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", mock.Anything, existingClient.ID()).Return(existingClient, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderIsNotEditable)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
