package commands

import (
	"errors"
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

// ErrUpdateOrderCommandIsNotConstructed is returned when the command was not
// created through the constructor.
var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a full save of the order form: client,
// delivery date, notes and the complete line item list.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	clientID     kernel.UUID
	deliveryDate time.Time
	notes        string
	items        []OrderItemInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to save an edited order.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	deliveryDate time.Time,
	notes string,
	items []OrderItemInput,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setDeliveryDate(deliveryDate),
		cmd.setItems(items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the (possibly reassigned) client reference.
func (c UpdateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// DeliveryDate returns the requested delivery date.
func (c UpdateOrderCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

// Notes returns the free-text order notes.
func (c UpdateOrderCommand) Notes() string {
	return c.notes
}

// Items returns the full replacement line item list.
func (c UpdateOrderCommand) Items() []OrderItemInput {
	return c.items
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *UpdateOrderCommand) setDeliveryDate(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return ErrDeliveryDateIsRequired
	}
	c.deliveryDate = deliveryDate
	return nil
}

func (c *UpdateOrderCommand) setItems(items []OrderItemInput) error {
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
