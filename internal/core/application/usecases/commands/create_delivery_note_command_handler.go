package commands

import (
	"context"

	"pedidos/internal/core/domain/model/billing"
	"pedidos/internal/core/domain/services"
)

// CreateDeliveryNoteCommandHandler handles delivery note generation. The
// document number is allocated, the note persisted and the origin order moved
// to remitted inside one transaction, so a failed document never strands the
// order in a dispatched state.
type CreateDeliveryNoteCommandHandler struct {
	uowFactory BillingUoWFactory
	issuer     services.DocumentIssuer
}

// NewCreateDeliveryNoteCommandHandler creates a handler for delivery note generation.
func NewCreateDeliveryNoteCommandHandler(
	uowFactory BillingUoWFactory,
	issuer services.DocumentIssuer,
) CreateDeliveryNoteCommandHandler {
	return CreateDeliveryNoteCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
	}
}

// Handle processes the delivery note command and returns the created note.
func (h *CreateDeliveryNoteCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryNoteCommand,
) (*billing.DeliveryNote, error) {
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
	number, err := billingRepo.NextDeliveryNoteNumber(ctx)
	if err != nil {
		return nil, err
	}

	lines, err := buildDocumentItems(cmd.Items())
	if err != nil {
		return nil, err
	}

	note, err := h.issuer.IssueDeliveryNote(o, issuingEmitter, number, lines, cmd.IssueDate())
	if err != nil {
		return nil, err
	}

	if err = billingRepo.AddDeliveryNote(ctx, note); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return note, nil
}

// buildDocumentItems turns form line inputs into document items.
func buildDocumentItems(inputs []DocumentItemInput) ([]billing.DocumentItem, error) {
	items := make([]billing.DocumentItem, 0, len(inputs))
	for _, input := range inputs {
		item, err := billing.NewDocumentItem(input.Description, input.Specification, input.Quantity, input.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
