// Package client provides the Client aggregate: the customer directory the
// orders and billing documents reference. Client lifecycle is independent of
// any single order.
package client

import (
	"errors"
	"strings"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// ErrClientIsNotConstructed is returned when a Client instance was not created
// through the NewClient factory method.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

// Client is a customer record. The trade name is optional; when present it
// takes precedence over the personal name for display. The default emitter is
// the billing identity preselected when invoicing this client.
type Client struct {
	id               kernel.UUID
	firstName        string
	lastName         string
	tradeName        string
	address          string
	phone            string
	taxID            string
	defaultEmitterID kernel.UUID

	isConstructed bool
}

// NewClient creates a validated client. A client needs at least a first or a
// trade name, and a default emitter for billing.
func NewClient(
	id kernel.UUID,
	firstName string,
	lastName string,
	tradeName string,
	address string,
	phone string,
	taxID string,
	defaultEmitterID kernel.UUID,
) (*Client, error) {
	c := &Client{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setNames(firstName, lastName, tradeName),
		c.setDefaultEmitterID(defaultEmitterID),
	); err != nil {
		return nil, err
	}

	c.address = address
	c.phone = phone
	c.taxID = taxID
	return c, nil
}

// Validate ensures the client was built through the constructor.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// FirstName returns the personal first name.
func (c *Client) FirstName() string {
	return c.firstName
}

// LastName returns the personal last name.
func (c *Client) LastName() string {
	return c.lastName
}

// TradeName returns the optional business name.
func (c *Client) TradeName() string {
	return c.tradeName
}

// Address returns the street address.
func (c *Client) Address() string {
	return c.address
}

// Phone returns the contact phone.
func (c *Client) Phone() string {
	return c.phone
}

// TaxID returns the tax identifier (CUIT).
func (c *Client) TaxID() string {
	return c.taxID
}

// DefaultEmitterID returns the billing identity preselected for this client.
func (c *Client) DefaultEmitterID() kernel.UUID {
	return c.defaultEmitterID
}

// DisplayName is the name shown in lists and documents: the trade name when
// present, otherwise "first last".
func (c *Client) DisplayName() string {
	if c.tradeName != "" {
		return c.tradeName
	}
	return strings.TrimSpace(c.firstName + " " + c.lastName)
}

// Update replaces the client's editable fields.
func (c *Client) Update(
	firstName string,
	lastName string,
	tradeName string,
	address string,
	phone string,
	taxID string,
	defaultEmitterID kernel.UUID,
) error {
	if err := errors.Join(
		c.setNames(firstName, lastName, tradeName),
		c.setDefaultEmitterID(defaultEmitterID),
	); err != nil {
		return err
	}

	c.address = address
	c.phone = phone
	c.taxID = taxID
	return nil
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setNames(firstName, lastName, tradeName string) error {
	if firstName == "" && tradeName == "" {
		return errs.NewValueIsRequiredError("firstName or tradeName")
	}
	c.firstName = firstName
	c.lastName = lastName
	c.tradeName = tradeName
	return nil
}

func (c *Client) setDefaultEmitterID(emitterID kernel.UUID) error {
	if err := emitterID.Validate(); err != nil {
		return err
	}
	c.defaultEmitterID = emitterID
	return nil
}
