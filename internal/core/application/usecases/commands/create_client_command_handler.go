package commands

import (
	"context"

	"pedidos/internal/core/domain/model/client"
)

// CreateClientCommandHandler handles client registration.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewCreateClientCommandHandler creates a handler for client registration.
func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the client creation command.
func (h *CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) error {
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

	newClient, err := client.NewClient(cmd.ClientID(), cmd.FirstName(), cmd.LastName(), cmd.TradeName(),
		cmd.Address(), cmd.Phone(), cmd.TaxID(), cmd.DefaultEmitterID())
	if err != nil {
		return err
	}

	if err = uow.ClientRepository().Add(ctx, newClient); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
