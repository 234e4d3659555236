package commands

import (
	"context"
)

// MarkOrderDeliveredCommandHandler handles delivered flag toggles. Cancelled
// orders reject the toggle; every other status allows it, including invoiced.
type MarkOrderDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderDeliveredCommandHandler creates a handler for delivered toggles.
func NewMarkOrderDeliveredCommandHandler(uowFactory OrderUoWFactory) MarkOrderDeliveredCommandHandler {
	return MarkOrderDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivered toggle command.
func (h *MarkOrderDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkOrderDeliveredCommand) error {
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

	if err = o.SetDelivered(cmd.Delivered()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
