package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

// ErrCreateClientCommandIsNotConstructed is returned when the command was not
// created through the constructor.
var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand represents registering a new client in the directory.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
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

// NewCreateClientCommand creates a command to register a client. At least a
// first or a trade name is required, plus a default emitter for billing.
func NewCreateClientCommand(
	clientID kernel.UUID,
	firstName string,
	lastName string,
	tradeName string,
	address string,
	phone string,
	taxID string,
	defaultEmitterID kernel.UUID,
) (CreateClientCommand, error) {
	cmd := CreateClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setNames(firstName, lastName, tradeName),
		cmd.setDefaultEmitterID(defaultEmitterID),
	); err != nil {
		return CreateClientCommand{}, err
	}

	cmd.address = address
	cmd.phone = phone
	cmd.taxID = taxID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// ClientID returns the identifier for the new client.
func (c CreateClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

// FirstName returns the personal first name.
func (c CreateClientCommand) FirstName() string {
	return c.firstName
}

// LastName returns the personal last name.
func (c CreateClientCommand) LastName() string {
	return c.lastName
}

// TradeName returns the optional business name.
func (c CreateClientCommand) TradeName() string {
	return c.tradeName
}

// Address returns the street address.
func (c CreateClientCommand) Address() string {
	return c.address
}

// Phone returns the contact phone.
func (c CreateClientCommand) Phone() string {
	return c.phone
}

// TaxID returns the tax identifier.
func (c CreateClientCommand) TaxID() string {
	return c.taxID
}

// DefaultEmitterID returns the billing identity preselected for this client.
func (c CreateClientCommand) DefaultEmitterID() kernel.UUID {
	return c.defaultEmitterID
}

func (c *CreateClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *CreateClientCommand) setNames(firstName, lastName, tradeName string) error {
	if firstName == "" && tradeName == "" {
		return errs.NewValueIsRequiredError("firstName or tradeName")
	}
	c.firstName = firstName
	c.lastName = lastName
	c.tradeName = tradeName
	return nil
}

func (c *CreateClientCommand) setDefaultEmitterID(emitterID kernel.UUID) error {
	if err := emitterID.Validate(); err != nil {
		return err
	}
	c.defaultEmitterID = emitterID
	return nil
}
