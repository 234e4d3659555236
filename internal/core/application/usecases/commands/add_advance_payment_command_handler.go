package commands

import (
	"context"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// AddAdvancePaymentCommandHandler handles advance payment collection.
// Payments are append-only; the aggregate rejects them once the order is no
// longer editable.
type AddAdvancePaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddAdvancePaymentCommandHandler creates a handler for advance payments.
func NewAddAdvancePaymentCommandHandler(uowFactory OrderUoWFactory) AddAdvancePaymentCommandHandler {
	return AddAdvancePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance payment command.
func (h *AddAdvancePaymentCommandHandler) Handle(ctx context.Context, cmd AddAdvancePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	payment, err := order.NewAdvancePayment(kernel.NewUUID(), cmd.Amount(), cmd.Method(), cmd.Detail(), cmd.Date())
	if err != nil {
		return err
	}

	if err = o.AddAdvancePayment(payment); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
