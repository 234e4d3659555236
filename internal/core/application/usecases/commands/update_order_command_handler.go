package commands

import (
	"context"
)

// UpdateOrderCommandHandler handles full order form saves. The aggregate
// rejects the save when the order is no longer editable, so stale browser
// tabs cannot modify remitted, invoiced or cancelled orders.
type UpdateOrderCommandHandler struct {
	uowFactory OrderIntakeUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderIntakeUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
// Loads the current order snapshot, re-checks edit eligibility through the
// aggregate, replaces the details and line items and persists the result.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	if _, err := uow.ClientRepository().Get(ctx, cmd.ClientID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.UpdateDetails(cmd.ClientID(), cmd.DeliveryDate(), cmd.Notes()); err != nil {
		return err
	}

	items, err := buildOrderItems(cmd.Items())
	if err != nil {
		return err
	}

	if err = o.ReplaceItems(items); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
