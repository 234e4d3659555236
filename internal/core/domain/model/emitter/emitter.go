// Package emitter provides the Emitter aggregate: a billing identity that
// issues invoices and delivery notes. The directory is read-only from the
// application's point of view; rows are seeded directly in the database.
package emitter

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// ErrEmitterIsNotConstructed is returned when an Emitter instance was not
// created through the NewEmitter factory method.
var ErrEmitterIsNotConstructed = errors.New("Emitter must be created via NewEmitter constructor")

// Emitter is a billing identity (name plus tax id) selectable when generating
// an invoice or delivery note.
type Emitter struct {
	id    kernel.UUID
	name  string
	taxID string

	isConstructed bool
}

// NewEmitter creates a validated emitter.
func NewEmitter(id kernel.UUID, name string, taxID string) (*Emitter, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Emitter{
		id:            id,
		name:          name,
		taxID:         taxID,
		isConstructed: true,
	}, nil
}

// Validate ensures the emitter was built through the constructor.
func (e *Emitter) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEmitterIsNotConstructed
	}
	return nil
}

// ID returns the emitter's unique identifier.
func (e *Emitter) ID() kernel.UUID {
	return e.id
}

// Name returns the emitter's display name.
func (e *Emitter) Name() string {
	return e.name
}

// TaxID returns the emitter's tax identifier (CUIT).
func (e *Emitter) TaxID() string {
	return e.taxID
}
