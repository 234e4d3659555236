package commands

import (
	"errors"
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

// ErrCreateDeliveryNoteCommandIsNotConstructed is returned when the command
// was not created through the constructor.
var ErrCreateDeliveryNoteCommandIsNotConstructed = errors.New(
	"CreateDeliveryNoteCommand must be created via NewCreateDeliveryNoteCommand constructor",
)

// DocumentItemInput is a priced document line as submitted by the issuing
// form. Unlike order lines, document lines always carry a price.
type DocumentItemInput struct {
	Description   string
	Specification string
	Quantity      int
	UnitPrice     kernel.Money
}

// CreateDeliveryNoteCommand represents generating a delivery note from an
// order. Lines are optional; when empty the order's own lines are copied.
type CreateDeliveryNoteCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	emitterID kernel.UUID
	issueDate time.Time
	items     []DocumentItemInput

	guard guard.ConstructorGuard
}

// NewCreateDeliveryNoteCommand creates a command to generate a delivery note.
func NewCreateDeliveryNoteCommand(
	orderID kernel.UUID,
	emitterID kernel.UUID,
	issueDate time.Time,
	items []DocumentItemInput,
) (CreateDeliveryNoteCommand, error) {
	cmd := CreateDeliveryNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEmitterID(emitterID),
		cmd.setIssueDate(issueDate),
		cmd.setItems(items),
	); err != nil {
		return CreateDeliveryNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryNoteCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryNoteCommandIsNotConstructed)
}

// OrderID returns the origin order identifier.
func (c CreateDeliveryNoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EmitterID returns the issuing emitter identifier.
func (c CreateDeliveryNoteCommand) EmitterID() kernel.UUID {
	return c.emitterID
}

// IssueDate returns the document issue date.
func (c CreateDeliveryNoteCommand) IssueDate() time.Time {
	return c.issueDate
}

// Items returns the submitted document lines, possibly empty.
func (c CreateDeliveryNoteCommand) Items() []DocumentItemInput {
	return c.items
}

func (c *CreateDeliveryNoteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryNoteCommand) setEmitterID(emitterID kernel.UUID) error {
	if err := emitterID.Validate(); err != nil {
		return err
	}
	c.emitterID = emitterID
	return nil
}

func (c *CreateDeliveryNoteCommand) setIssueDate(issueDate time.Time) error {
	if issueDate.IsZero() {
		return errs.NewValueIsRequiredError("issueDate")
	}
	c.issueDate = issueDate
	return nil
}

func (c *CreateDeliveryNoteCommand) setItems(items []DocumentItemInput) error {
	if err := validateDocumentItemInputs(items); err != nil {
		return err
	}
	c.items = items
	return nil
}

func validateDocumentItemInputs(items []DocumentItemInput) error {
	for _, item := range items {
		if item.Description == "" {
			return errs.NewValueIsRequiredError("description")
		}
		if item.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than or equal to 1", item.Quantity))
		}
		if item.UnitPrice.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause("unitPrice",
				fmt.Errorf("%s is negative", item.UnitPrice.String()))
		}
	}
	return nil
}
