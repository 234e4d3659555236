package commands_test

import (
	"testing"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateInvoiceCommandHandler_Handle_FromRemittedOrder(t *testing.T) {
	ctx := t.Context()
	o := buildOrderInStatus(t, order.Remitted, false)
	issuingEmitter := buildEmitter(t)

	// the issuing form re-priced the lines
	lines := []commands.DocumentItemInput{
		{Description: "Harina 000", Specification: "bolsa 25kg", Quantity: 2, UnitPrice: mustMoney(t, "12.50")},
	}
	cmd, _ := commands.NewCreateInvoiceCommand(o.ID(), issuingEmitter.ID(), testDeliveryDate(), lines)

	orderRepo := new(MockOrderRepository)
	emitterRepo := new(MockEmitterRepository)
	billingRepo := new(MockBillingRepository)
	uow := new(MockBillingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("EmitterRepository").Return(emitterRepo).Once(),
		emitterRepo.On("Get", mock.Anything, issuingEmitter.ID()).Return(issuingEmitter, nil).Once(),
		uow.On("BillingRepository").Return(billingRepo).Once(),
		billingRepo.On("NextInvoiceNumber", ctx).Return(42, nil).Once(),
		billingRepo.On("AddInvoice", mock.Anything, mock.AnythingOfType("*billing.Invoice")).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateInvoiceCommandHandler(factory, services.NewDocumentIssuer())
	invoice, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, invoice)

	assert.Equal(t, 42, invoice.Number())
	assert.Equal(t, "25.00", invoice.Total().String())
	assert.Equal(t, order.Invoiced, o.Status())
	uow.AssertExpectations(t)
	billingRepo.AssertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_CancelledOrderCannotBeInvoiced(t *testing.T) {
	ctx := t.Context()
	o := buildOrderInStatus(t, order.Cancelled, false)
	issuingEmitter := buildEmitter(t)
	cmd, _ := commands.NewCreateInvoiceCommand(o.ID(), issuingEmitter.ID(), testDeliveryDate(), nil)

	orderRepo := new(MockOrderRepository)
	emitterRepo := new(MockEmitterRepository)
	billingRepo := new(MockBillingRepository)
	uow := new(MockBillingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("EmitterRepository").Return(emitterRepo).Once(),
		emitterRepo.On("Get", mock.Anything, issuingEmitter.ID()).Return(issuingEmitter, nil).Once(),
		uow.On("BillingRepository").Return(billingRepo).Once(),
		billingRepo.On("NextInvoiceNumber", ctx).Return(43, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateInvoiceCommandHandler(factory, services.NewDocumentIssuer())
	invoice, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, invoice)
	assert.Equal(t, order.Cancelled, o.Status())
	uow.AssertExpectations(t)
}
