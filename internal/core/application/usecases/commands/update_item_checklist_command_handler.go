package commands

import (
	"context"
)

// UpdateItemChecklistCommandHandler handles picking checklist updates. The
// order's preparation status is recomputed inside the aggregate, so ticking
// the last item moves the order to prepared complete in the same transaction.
type UpdateItemChecklistCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateItemChecklistCommandHandler creates a handler for checklist updates.
func NewUpdateItemChecklistCommandHandler(uowFactory OrderUoWFactory) UpdateItemChecklistCommandHandler {
	return UpdateItemChecklistCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checklist update command.
// Resolves the owning order by item id, applies the checklist change through
// the aggregate and persists the recomputed status.
func (h *UpdateItemChecklistCommandHandler) Handle(ctx context.Context, cmd UpdateItemChecklistCommand) error {
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
	o, err := orderRepo.GetByItemID(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = o.SetItemChecklist(cmd.ItemID(), cmd.Picked(), cmd.Notes()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
