package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

// ErrUpdateClientCommandIsNotConstructed is returned when the command was not
// created through the constructor.
var ErrUpdateClientCommandIsNotConstructed = errors.New(
	"UpdateClientCommand must be created via NewUpdateClientCommand constructor",
)

// UpdateClientCommand represents a full save of the client form.
type UpdateClientCommand struct { //nolint:recvcheck //using for validation
	clientID         kernel.UUID
	firstName        string
	lastName         string
	tradeName        string
	address          string
	phone            string
	taxID            string
	defaultEmitterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateClientCommand creates a command to save an edited client.
func NewUpdateClientCommand(
	clientID kernel.UUID,
	firstName string,
	lastName string,
	tradeName string,
	address string,
	phone string,
	taxID string,
	defaultEmitterID kernel.UUID,
) (UpdateClientCommand, error) {
	cmd := UpdateClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setNames(firstName, lastName, tradeName),
		cmd.setDefaultEmitterID(defaultEmitterID),
	); err != nil {
		return UpdateClientCommand{}, err
	}

	cmd.address = address
	cmd.phone = phone
	cmd.taxID = taxID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateClientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientCommandIsNotConstructed)
}

// ClientID returns the identifier of the client to update.
func (c UpdateClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

// FirstName returns the personal first name.
func (c UpdateClientCommand) FirstName() string {
	return c.firstName
}

// LastName returns the personal last name.
func (c UpdateClientCommand) LastName() string {
	return c.lastName
}

// TradeName returns the optional business name.
func (c UpdateClientCommand) TradeName() string {
	return c.tradeName
}

// Address returns the street address.
func (c UpdateClientCommand) Address() string {
	return c.address
}

// Phone returns the contact phone.
func (c UpdateClientCommand) Phone() string {
	return c.phone
}

// TaxID returns the tax identifier.
func (c UpdateClientCommand) TaxID() string {
	return c.taxID
}

// DefaultEmitterID returns the billing identity preselected for this client.
func (c UpdateClientCommand) DefaultEmitterID() kernel.UUID {
	return c.defaultEmitterID
}

func (c *UpdateClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *UpdateClientCommand) setNames(firstName, lastName, tradeName string) error {
	if firstName == "" && tradeName == "" {
		return errs.NewValueIsRequiredError("firstName or tradeName")
	}
	c.firstName = firstName
	c.lastName = lastName
	c.tradeName = tradeName
	return nil
}

func (c *UpdateClientCommand) setDefaultEmitterID(emitterID kernel.UUID) error {
	if err := emitterID.Validate(); err != nil {
		return err
	}
	c.defaultEmitterID = emitterID
	return nil
}
