package commands_test

import (
	"testing"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddAdvancePaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := buildOrderInStatus(t, order.Pending, false)
	cmd, _ := commands.NewAddAdvancePaymentCommand(
		o.ID(), mustMoney(t, "15.00"), order.Mixed, "parte en efectivo", testDeliveryDate())

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

	h := commands.NewAddAdvancePaymentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Len(t, o.AdvancePayments(), 1)
	assert.Equal(t, "15.00", o.AdvancesTotal().String())
	assert.Equal(t, "15.00", o.BalanceDue().String()) // 30.00 total minus 15.00 advance
	uow.AssertExpectations(t)
}

func TestAddAdvancePaymentCommandHandler_Handle_ClosedOrderRejectsPayment(t *testing.T) {
	ctx := t.Context()
	o := buildOrderInStatus(t, order.Invoiced, false)
	cmd, _ := commands.NewAddAdvancePaymentCommand(
		o.ID(), mustMoney(t, "15.00"), order.Cash, "", testDeliveryDate())

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

	h := commands.NewAddAdvancePaymentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderIsNotEditable)
	assert.Empty(t, o.AdvancePayments())
	uow.AssertExpectations(t)
}
