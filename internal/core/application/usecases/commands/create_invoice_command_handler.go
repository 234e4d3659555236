package commands

import (
	"context"

	"pedidos/internal/core/domain/model/billing"
	"pedidos/internal/core/domain/services"
)

// CreateInvoiceCommandHandler handles invoice generation. Number allocation,
// invoice persistence and the order's move to invoiced happen in one
// transaction.
type CreateInvoiceCommandHandler struct {
	uowFactory BillingUoWFactory
	issuer     services.DocumentIssuer
}

// NewCreateInvoiceCommandHandler creates a handler for invoice generation.
func NewCreateInvoiceCommandHandler(
	uowFactory BillingUoWFactory,
	issuer services.DocumentIssuer,
) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
	}
}

// Handle processes the invoice command and returns the created invoice.
func (h *CreateInvoiceCommandHandler) Handle(
	ctx context.Context,
	cmd CreateInvoiceCommand,
) (*billing.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	issuingEmitter, err := uow.EmitterRepository().Get(ctx, cmd.EmitterID())
	if err != nil {
		return nil, err
	}

	billingRepo := uow.BillingRepository()
	number, err := billingRepo.NextInvoiceNumber(ctx)
	if err != nil {
		return nil, err
	}

	lines, err := buildDocumentItems(cmd.Items())
	if err != nil {
		return nil, err
	}

	invoice, err := h.issuer.IssueInvoice(o, issuingEmitter, number, lines, cmd.IssueDate())
	if err != nil {
		return nil, err
	}

	if err = billingRepo.AddInvoice(ctx, invoice); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return invoice, nil
}
