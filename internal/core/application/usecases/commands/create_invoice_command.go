package commands

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

// ErrCreateInvoiceCommandIsNotConstructed is returned when the command was
// not created through the constructor.
var ErrCreateInvoiceCommandIsNotConstructed = errors.New(
	"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
)

// CreateInvoiceCommand represents generating an invoice from an order. Lines
// are optional; when empty the order's own lines are copied.
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	emitterID kernel.UUID
	issueDate time.Time
	items     []DocumentItemInput

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand creates a command to generate an invoice.
func NewCreateInvoiceCommand(
	orderID kernel.UUID,
	emitterID kernel.UUID,
	issueDate time.Time,
	items []DocumentItemInput,
) (CreateInvoiceCommand, error) {
	cmd := CreateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEmitterID(emitterID),
		cmd.setIssueDate(issueDate),
		cmd.setItems(items),
	); err != nil {
		return CreateInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// OrderID returns the origin order identifier.
func (c CreateInvoiceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EmitterID returns the issuing emitter identifier.
func (c CreateInvoiceCommand) EmitterID() kernel.UUID {
	return c.emitterID
}

// IssueDate returns the document issue date.
func (c CreateInvoiceCommand) IssueDate() time.Time {
	return c.issueDate
}

// Items returns the submitted document lines, possibly empty.
func (c CreateInvoiceCommand) Items() []DocumentItemInput {
	return c.items
}

func (c *CreateInvoiceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateInvoiceCommand) setEmitterID(emitterID kernel.UUID) error {
	if err := emitterID.Validate(); err != nil {
		return err
	}
	c.emitterID = emitterID
	return nil
}

func (c *CreateInvoiceCommand) setIssueDate(issueDate time.Time) error {
	if issueDate.IsZero() {
		return errs.NewValueIsRequiredError("issueDate")
	}
	c.issueDate = issueDate
	return nil
}

func (c *CreateInvoiceCommand) setItems(items []DocumentItemInput) error {
	if err := validateDocumentItemInputs(items); err != nil {
		return err
	}
	c.items = items
	return nil
}
