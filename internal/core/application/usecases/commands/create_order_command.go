package commands

import (
	"errors"
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeliveryDateIsRequired = errors.New("delivery date is required")
)

// OrderItemInput is the raw line data carried by order intake commands.
// The handler turns each input into a validated domain item.
type OrderItemInput struct {
	ProductDescription string
	Specification      string
	QuantityRequested  int
	UnitPrice          *kernel.Money
}

// CreateOrderCommand represents a request to register a new order for a
// client, with its delivery date, notes and initial line items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), clientID, date, "sin sal", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	clientID     kernel.UUID
	deliveryDate time.Time
	notes        string
	items        []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identifiers, the delivery date and each item's quantity.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	deliveryDate time.Time,
	notes string,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setDeliveryDate(deliveryDate),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the client the order is for.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// DeliveryDate returns the requested delivery date.
func (c CreateOrderCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

// Notes returns the free-text order notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// Items returns the initial line items.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setDeliveryDate(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return ErrDeliveryDateIsRequired
	}
	c.deliveryDate = deliveryDate
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	for _, item := range items {
		if item.ProductDescription == "" {
			return errs.NewValueIsRequiredError("productDescription")
		}
		if item.QuantityRequested < 1 {
			return errs.NewValueIsInvalidErrorWithCause("quantityRequested",
				fmt.Errorf("%d is not greater than or equal to 1", item.QuantityRequested))
		}
	}
	c.items = items
	return nil
}
