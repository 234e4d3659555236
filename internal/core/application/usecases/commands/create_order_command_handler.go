package commands

import (
	"context"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// New orders start in pending status with their checklist untouched.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), clientID, date, "", items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now registered and visible on its delivery date
type CreateOrderCommandHandler struct {
	uowFactory OrderIntakeUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires an OrderIntakeUoWFactory so the client reference can be resolved
// in the same transaction that persists the order.
func NewCreateOrderCommandHandler(uowFactory OrderIntakeUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Verifies the referenced client exists, builds the validated line items and
// persists the new order. Uses transaction to ensure the order is properly
// persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	items, err := buildOrderItems(cmd.Items())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.ClientID(), cmd.DeliveryDate(), cmd.Notes(), items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// buildOrderItems turns raw line inputs into validated domain items, minting
// a fresh identifier for each line.
func buildOrderItems(inputs []OrderItemInput) ([]*order.OrderItem, error) {
	items := make([]*order.OrderItem, 0, len(inputs))
	for _, input := range inputs {
		item, err := order.NewOrderItem(
			kernel.NewUUID(),
			input.ProductDescription,
			input.Specification,
			input.QuantityRequested,
			input.UnitPrice,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
