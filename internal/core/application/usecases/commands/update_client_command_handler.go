package commands

import (
	"context"
)

// UpdateClientCommandHandler handles client form saves.
type UpdateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewUpdateClientCommandHandler creates a handler for client updates.
func NewUpdateClientCommandHandler(uowFactory ClientUoWFactory) UpdateClientCommandHandler {
	return UpdateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the client update command.
func (h *UpdateClientCommandHandler) Handle(ctx context.Context, cmd UpdateClientCommand) error {
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

	clientRepo := uow.ClientRepository()
	c, err := clientRepo.Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	if err = c.Update(cmd.FirstName(), cmd.LastName(), cmd.TradeName(),
		cmd.Address(), cmd.Phone(), cmd.TaxID(), cmd.DefaultEmitterID()); err != nil {
		return err
	}

	if err = clientRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
